package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namebank/internal/names"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single name record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, err := names.Load(cfg.Paths.Database)
			if err != nil {
				return err
			}

			id := strings.ToLower(strings.TrimSpace(args[0]))
			record, ok := catalog.Get(id)
			if !ok {
				return fmt.Errorf("name %q not found in the database", id)
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, record)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", record.Name, record.ID)
			fmt.Fprintf(out, "  Gender:     %s\n", record.Gender)
			fmt.Fprintf(out, "  Origins:    %s\n", strings.Join(record.Origins, ", "))
			fmt.Fprintf(out, "  Styles:     %s\n", strings.Join(record.Styles, ", "))
			fmt.Fprintf(out, "  Meaning:    %s\n", record.Meaning)
			fmt.Fprintf(out, "  Popularity: %s\n", record.Popularity)
			return nil
		},
	}
}
