//go:build unit
// +build unit

package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.1.1", want: "v1.1.1"},
		{in: "v1.1.1", want: "v1.1.1"},
		{in: "0.15.4", want: "v0.15.4"},
		{in: "2020.6.8", want: "v2020.6.8"},
		{in: "abc123", want: "abc123"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AddV(tt.in), "AddV(%q)", tt.in)
	}
}

func TestVersionColor(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "1.1.1", want: ColorBlue},
		{version: "3.7", want: ColorBlue},
		{version: "0.15.4", want: ColorOrange},
		{version: "2.0.0-rc1", want: ColorOrange},
		{version: "not-a-version", want: ColorLightGrey},
		{version: "", want: ColorLightGrey},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VersionColor(tt.version), "VersionColor(%q)", tt.version)
	}
}

func TestRenderVersion(t *testing.T) {
	assert.Equal(t, Badge{
		Label:   "python",
		Message: "3.7",
		Color:   ColorBlue,
	}, RenderVersion(VersionParams{Version: "3.7", DefaultLabel: "python"}))
}

func TestRenderVersion_Tag(t *testing.T) {
	assert.Equal(t, Badge{
		Label:   "python@master",
		Message: "3.7",
		Color:   ColorBlue,
	}, RenderVersion(VersionParams{Version: "3.7", DefaultLabel: "python", Tag: "master"}))
}

func TestRenderVersion_Prefixed(t *testing.T) {
	assert.Equal(t, Badge{
		Label:   "release",
		Message: "v1.2.3",
		Color:   ColorBlue,
	}, RenderVersion(VersionParams{Version: "1.2.3", DefaultLabel: "release", Prefixed: true}))
}
