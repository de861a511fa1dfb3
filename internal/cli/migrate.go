package cli

import (
	"context"
	"fmt"
	"io"

	"pocketratings/internal/infra/persistence/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Long: `Apply the embedded schema to the configured database.
Every statement is idempotent, so running migrate twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := opts.printer(cmd)
			stmts := database.Statements()

			if dryRun {
				return printer.Result(stmts, func(w io.Writer) {
					for _, stmt := range stmts {
						fmt.Fprintf(w, "%s;\n\n", stmt)
					}
				})
			}

			var db *gorm.DB

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				printer.Verbosef("applying %d statements", len(stmts))
				if err := database.Migrate(ctx, db); err != nil {
					return err
				}

				return printer.Done("schema is up to date (%d statements)", len(stmts))
			}, &db)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the statements instead of running them")

	return cmd
}
