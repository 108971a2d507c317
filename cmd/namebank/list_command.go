package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namebank/internal/names"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filter names.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List name records",
		Long:  "List name records in database order, optionally filtered by gender, origin, style, or popularity tier.",
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

			records := catalog.Select(filter)

			if ctx.jsonMode() {
				if records == nil {
					records = []names.Record{}
				}
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No matching names")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					r.ID,
					r.Name,
					r.Gender,
					strings.Join(r.Origins, ", "),
					r.Popularity,
				})
			}
			renderTable(out, []string{"ID", "Name", "Gender", "Origins", "Popularity"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Gender, "gender", "", "Filter by gender tag")
	cmd.Flags().StringVar(&filter.Origin, "origin", "", "Filter by origin tag")
	cmd.Flags().StringVar(&filter.Style, "style", "", "Filter by style tag")
	cmd.Flags().StringVar(&filter.Popularity, "popularity", "", "Filter by popularity tier")
	return cmd
}
