package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isaacfidler/cratedig/internal/version"
	"github.com/isaacfidler/cratedig/pkg/logging"
)

var (
	verbosity  int
	dryRun     bool
	sourceFlag string
	destFlag   string

	rootCmd = &cobra.Command{
		Use:   "cratedig",
		Short: "Organize a sample library into a browsable symlink taxonomy",
		Long: `cratedig mirrors a deeply-nested sample library (Splice-style packs)
into a flat, categorized tree of symbolic links: one-shots by instrument, loops
by type, genres by keyword. Your original files are never touched; the organized
tree is always derived and can be rebuilt at any time.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without creating or removing links")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Sample library root (default: ~/Splice/sounds/packs)")
	rootCmd.PersistentFlags().StringVar(&destFlag, "dest", "", "Organized tree root (default: ~/Splice-Organized)")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resyncCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cratedig version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
