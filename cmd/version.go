package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

const repoSlug = "s0up4200/bggxml"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected via ldflags
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bggxml %s\n", version)
		fmt.Printf("  built:   %s\n", buildTime)
		fmt.Printf("  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

// currentVersion parses the build version, accepting a leading "v".
// Development builds have no comparable version.
func currentVersion() (semver.Version, bool) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}
