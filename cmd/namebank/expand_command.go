package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namebank/internal/expand"
	"namebank/internal/names"
)

func newExpandCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Merge the built-in candidate names into the database",
		Long: `Merge the built-in candidate names into the database.

Candidates whose identifier already exists are skipped; existing records are
never overwritten. The combined set is sorted alphabetically by display name
(case-insensitive) and written back to the database file in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			historyStore := ctx.openHistory(logger)
			if historyStore != nil {
				defer historyStore.Close()
			}

			result, err := expand.Run(cmd.Context(), expand.Options{
				DatabasePath: cfg.Paths.Database,
				LockPath:     cfg.LockPath(),
				Candidates:   names.BuiltinCandidates(),
				Source:       "builtin",
				DryRun:       dryRun,
				History:      historyStore,
				Logger:       logger,
			})
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, map[string]any{
					"before":  result.Before,
					"after":   result.After,
					"added":   result.Added,
					"dry_run": dryRun,
				})
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "Would expand database from %d to %d names\n", result.Before, result.After)
				fmt.Fprintf(out, "Would add %d new names\n", result.Added)
				return nil
			}
			fmt.Fprintf(out, "Database expanded from %d to %d names\n", result.Before, result.After)
			fmt.Fprintf(out, "Added %d new names\n", result.Added)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report counts without writing the database")
	return cmd
}
