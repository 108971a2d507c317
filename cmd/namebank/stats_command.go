package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"namebank/internal/names"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the database by gender and popularity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, err := names.Load(cfg.Paths.Database)
			if err != nil {
				return err
			}

			stats := catalog.Summarize()

			if ctx.jsonMode() {
				return writeJSON(cmd, map[string]any{
					"total":         stats.Total,
					"by_gender":     stats.ByGender,
					"by_popularity": stats.ByPopularity,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total names: %d\n\n", stats.Total)

			fmt.Fprintln(out, "By gender:")
			for _, key := range sortedKeys(stats.ByGender) {
				fmt.Fprintf(out, "  %-10s %d\n", key, stats.ByGender[key])
			}

			fmt.Fprintln(out, "\nBy popularity:")
			for _, key := range sortedKeys(stats.ByPopularity) {
				fmt.Fprintf(out, "  %-10s %d\n", key, stats.ByPopularity[key])
			}
			return nil
		},
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
