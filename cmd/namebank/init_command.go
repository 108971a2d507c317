package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namebank/internal/names"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty name database",
		Long:  "Create an empty name database ([]) at the configured path so `namebank expand` has a file to operate on.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.Database
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("database already exists at %s (use --force to replace it)", path)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check database path: %w", err)
				}
			}

			catalog := names.NewCatalog(nil)
			if err := catalog.Save(path); err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, map[string]any{"database": path, "records": 0})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created empty name database at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing database")
	return cmd
}
