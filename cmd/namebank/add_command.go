package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"namebank/internal/expand"
	"namebank/internal/names"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		displayName string
		gender      string
		origins     []string
		styles      []string
		meaning     string
		popularity  string
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a single name record to the database",
		Long: `Add a single name record to the database.

The identifier must be new; an existing record is never overwritten. When
--name is omitted the display name is the title-cased identifier.

Example:
  namebank add nova --gender neutral --origin latin --style modern --meaning "New star" --popularity uncommon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			id := strings.ToLower(strings.TrimSpace(args[0]))
			if id == "" {
				return fmt.Errorf("identifier must not be empty")
			}

			// Refuse before touching anything: a duplicate must not rewrite
			// the database or leave a history run behind.
			catalog, err := names.Load(cfg.Paths.Database)
			if err != nil {
				return err
			}
			if catalog.Contains(id) {
				return fmt.Errorf("name %q already exists in the database", id)
			}

			name := strings.TrimSpace(displayName)
			if name == "" {
				name = cases.Title(language.English).String(id)
			}

			record := names.Record{
				ID:         id,
				Name:       name,
				Gender:     strings.ToLower(strings.TrimSpace(gender)),
				Origins:    origins,
				Styles:     styles,
				Meaning:    meaning,
				Popularity: strings.ToLower(strings.TrimSpace(popularity)),
			}

			historyStore := ctx.openHistory(logger)
			if historyStore != nil {
				defer historyStore.Close()
			}

			result, err := expand.Run(cmd.Context(), expand.Options{
				DatabasePath: cfg.Paths.Database,
				LockPath:     cfg.LockPath(),
				Candidates:   []names.Record{record},
				Source:       "manual:" + id,
				History:      historyStore,
				Logger:       logger,
			})
			if err != nil {
				return err
			}
			if result.Added == 0 {
				// Lost a race with a concurrent writer between the check and
				// the merge.
				return fmt.Errorf("name %q already exists in the database", id)
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, map[string]any{
					"added":  record,
					"before": result.Before,
					"after":  result.After,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to the database (%d names total)\n", record.Name, record.ID, result.After)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (defaults to the title-cased identifier)")
	cmd.Flags().StringVar(&gender, "gender", names.GenderNeutral, "Gender tag (male | female | neutral)")
	cmd.Flags().StringArrayVar(&origins, "origin", nil, "Origin tag (repeatable)")
	cmd.Flags().StringArrayVar(&styles, "style", nil, "Style tag (repeatable)")
	cmd.Flags().StringVar(&meaning, "meaning", "", "Free-text meaning")
	cmd.Flags().StringVar(&popularity, "popularity", names.PopularityUncommon, "Popularity tier (rare | uncommon | common | popular)")
	return cmd
}
