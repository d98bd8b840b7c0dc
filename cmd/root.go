package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotator-api",
	Short: "Video Annotation API server",
	Long: `Video Annotation API - store videos and the annotations attached to them

Every video has a duration; annotations mark a typed time range inside it.
All /videos endpoints require the shared key in the x-api-key header.

Features:
  • Video create, list and delete
  • Annotation create, list, update and delete with bounds checks
  • SQLite, MySQL or PostgreSQL storage
  • In-memory or Redis video cache`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig initializes configuration for commands that need it.
// Logging flags given on the command line override the settings file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		config.Set("logging.level", level)
	}
	if flags.Changed("json-logs") {
		jsonLogs, _ := flags.GetBool("json-logs")
		if jsonLogs {
			config.Set("logging.format", "json")
		} else {
			config.Set("logging.format", "text")
		}
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
