package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridden with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the build version, VCS revision and toolchain of the advent solver",
	RunE:  runVersion,
}

// buildVersion fills in whatever ldflags left at their defaults from the
// module build info embedded by the Go toolchain.
func buildVersion(info *debug.BuildInfo, ok bool) (string, string) {
	v, c := version, commit
	if !ok || info == nil {
		return v, c
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	if c == "unknown" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				c = s.Value
				if len(c) > 12 {
					c = c[:12]
				}
			}
		}
	}
	return v, c
}

func runVersion(cmd *cobra.Command, args []string) error {
	v, c := buildVersion(debug.ReadBuildInfo())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "advent %s (%s)\n", v, c)
	fmt.Fprintf(out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
