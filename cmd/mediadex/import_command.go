package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mediadex/internal/catalog"
	"mediadex/internal/config"
	"mediadex/internal/importer"
	"mediadex/internal/logging"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a catalog export into the normalized database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := os.Stat(absPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("export does not exist: %s", absPath)
				}
				return fmt.Errorf("inspect export: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", absPath)
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				imp := importer.New(cfg, store, logger)
				opts := importer.Options{Path: absPath, Limit: limit}
				if interval := cfg.Import.ProgressInterval; interval > 0 {
					progressLogger := logging.WithComponent(logger, "importer")
					opts.Progress = func(rows int) error {
						if rows%interval == 0 {
							progressLogger.Debug("import progress", logging.Int("rows_examined", rows))
						}
						return nil
					}
				}

				result, err := imp.Run(cmd.Context(), opts)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Done. Rows examined: %d. Titles created: %d.\n",
					result.RowsExamined, result.TitlesCreated)
				for _, kind := range catalog.EntityKinds() {
					if created := result.EntitiesCreated[kind.String()]; created > 0 {
						fmt.Fprintf(out, "New %s rows: %d\n", kind, created)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many rows (0 = all)")
	return cmd
}
