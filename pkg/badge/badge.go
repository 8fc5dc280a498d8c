// Package badge builds the label/message/color records served to badge
// renderers.
package badge

import (
	"github.com/Masterminds/semver/v3"
)

// Colors used by badge producers.
const (
	ColorBlue      = "blue"
	ColorOrange    = "orange"
	ColorRed       = "red"
	ColorLightGrey = "lightgrey"
)

// Badge is the record returned to the caller. It maps directly onto the
// JSON body of a badge response.
type Badge struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// AddV prefixes a version with "v" when it starts with a digit, so
// "1.1.1" renders as "v1.1.1" while refs like "abc123" pass through.
func AddV(version string) string {
	if version == "" {
		return version
	}
	if version[0] >= '0' && version[0] <= '9' {
		return "v" + version
	}
	return version
}

// VersionColor classifies a version string: blue for stable releases,
// orange for 0.x and pre-releases, lightgrey when the string is not a
// version at all.
func VersionColor(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return ColorLightGrey
	}
	if v.Major() == 0 || v.Prerelease() != "" {
		return ColorOrange
	}
	return ColorBlue
}

// VersionParams describes a version badge.
type VersionParams struct {
	Version string
	// DefaultLabel is the label used when no tag is supplied.
	DefaultLabel string
	// Tag, when set, qualifies the label as "<DefaultLabel>@<Tag>".
	// Callers pass the requested branch here.
	Tag string
	// Prefixed adds the "v" prefix to the message. Version strings that
	// are not semver-styled (Python interpreter versions) leave it off.
	Prefixed bool
}

// RenderVersion builds a version badge. It is pure: no I/O, identical
// output for identical input.
func RenderVersion(params VersionParams) Badge {
	label := params.DefaultLabel
	if params.Tag != "" {
		label = params.DefaultLabel + "@" + params.Tag
	}
	message := params.Version
	if params.Prefixed {
		message = AddV(message)
	}
	return Badge{
		Label:   label,
		Message: message,
		Color:   VersionColor(params.Version),
	}
}
