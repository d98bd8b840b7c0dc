package cmd

import (
	"fmt"

	"github.com/killallgit/annotator-api/internal/logger"
	"github.com/killallgit/annotator-api/internal/seed"
	"github.com/spf13/cobra"
)

// seedCmd fills the database with fake data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert fake videos and annotations",
	Long: `Insert randomly generated videos and annotations for local development.

Every generated annotation lies within its video's duration.

Example:
  annotator-api seed
  annotator-api seed --videos 20 --annotations 5`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("videos", 10, "number of videos to create")
	seedCmd.Flags().Int("annotations", 3, "number of annotations per video")
	seedCmd.Flags().Int("max-duration", 3600, "longest generated video in seconds")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	db, err := openDatabase(cfg.Database, true)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Seeding never reads videos back
	cfg.Cache.Enabled = false
	svcs, err := buildServices(cmd.Context(), cfg, db, log)
	if err != nil {
		return err
	}
	defer svcs.Close()

	videoCount, _ := cmd.Flags().GetInt("videos")
	perVideo, _ := cmd.Flags().GetInt("annotations")
	maxDuration, _ := cmd.Flags().GetInt("max-duration")

	result, err := seed.Run(cmd.Context(), svcs.videos, svcs.annotations, seed.Options{
		Videos:              videoCount,
		AnnotationsPerVideo: perVideo,
		MaxDurationInSec:    maxDuration,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %d videos and %d annotations\n", result.Videos, result.Annotations)
	return nil
}
