package mailchimp

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the MailChimp Marketing API version this SDK targets. It is
// the version segment baked into every resolved endpoint.
const APIVersion = "3.0"

// APIVersionRange is the semver constraint describing API versions this SDK
// is expected to work against.
const APIVersionRange = "^3.0"

// IsCompatible reports whether the given API version falls within
// APIVersionRange. Unparseable versions are never compatible.
func IsCompatible(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
