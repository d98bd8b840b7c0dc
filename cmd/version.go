package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	apiversion "github.com/killallgit/annotator-api/api/version"
	"github.com/spf13/cobra"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// buildInfo is what the version command reports
type buildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Name:      apiversion.Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display the build of the Video Annotation API.

The version is also served by GET / on a running server.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print build information as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := currentBuildInfo()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", info.Version)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintln(out, info.Name)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", info.Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", info.GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", info.BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(out, "Platform:     %s\n", info.Platform)
	return nil
}
