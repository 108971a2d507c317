package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namebank/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded expansion runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history recording is disabled (set history.enabled = true)")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			const stampLayout = "2006-01-02 15:04"
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortRunID(run.RunID),
					run.RunAt.Local().Format(stampLayout),
					run.Source,
					fmt.Sprintf("%d", run.Before),
					fmt.Sprintf("%d", run.After),
					fmt.Sprintf("%d", run.Added),
				})
			}
			renderTable(out, []string{"Run", "Run at", "Source", "Before", "After", "Added"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	return cmd
}

// shortRunID abbreviates a run UUID to its first block for table display.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
