package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema of the Video Annotation API.

The schema is derived from the video and annotation models.

Available subcommands:
  up      - Create or update the videos and annotations tables
  down    - Drop the videos and annotations tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the schema",
	Long: `Create or update the videos and annotations tables.

Existing data is kept; missing tables, columns and indexes are added.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the schema",
	Long: `Drop the videos and annotations tables.

Every stored video and annotation is lost. Asks for confirmation unless --yes is given.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

Lists every managed table and whether it exists.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - would create or update: annotations, videos")
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database, true)
	if err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	defer db.Close()

	fmt.Fprintln(out, "Schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - would drop: annotations, videos")
		return nil
	}

	// Confirmation prompt for destructive action
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprint(out, "WARNING: This drops every video and annotation. Continue? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DropAll(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Dropped tables: annotations, videos")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database, false)
	if err != nil {
		return err
	}
	defer db.Close()

	status := db.TableStatus()
	tables := make([]string, 0, len(status))
	for table := range status {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "Driver: %s\n", cfg.Database.Driver)
	for _, table := range tables {
		state := "missing"
		if status[table] {
			state = "present"
		}
		fmt.Fprintf(out, "  %-14s %s\n", table, state)
	}
	return nil
}
