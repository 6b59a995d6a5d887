package main

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	platform := runtime.Version() + ", " + runtime.GOOS + "/" + runtime.GOARCH

	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{"no build info", "", nil, "quadcrack dev (" + platform + ")"},
		{"devel", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "quadcrack dev (" + platform + ")"},
		{"module version", "", &debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}}, "quadcrack v1.2.0 (" + platform + ")"},
		{"ldflags win", "v9", &debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}}, "quadcrack v9 (" + platform + ")"},
		{
			"commit",
			"",
			&debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.modified", Value: "true"},
			}},
			"quadcrack dev (" + platform + ", 0123456789ab-dirty)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := Version
			Version = tt.version
			defer func() { Version = old }()
			require.Equal(t, tt.want, versionString(tt.info))
		})
	}
}
