package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version overrides the module version, set with -ldflags "-X main.Version=..."
var Version = ""

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of quadcrack",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		if nameOnly {
			fmt.Println(versionName(info))
			return
		}
		fmt.Println(versionString(info))
	},
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version name only")
	mainCommand.AddCommand(commandVersion)
}

func versionName(info *debug.BuildInfo) string {
	if Version != "" {
		return Version
	}
	if info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// versionString adds the toolchain, platform and, when the binary was built
// from a checkout, the commit.
func versionString(info *debug.BuildInfo) string {
	s := fmt.Sprintf("quadcrack %s (%s, %s/%s", versionName(info), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if info != nil {
		var revision string
		var modified bool
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if revision != "" {
			s += ", " + revision
			if modified {
				s += "-dirty"
			}
		}
	}
	return s + ")"
}
