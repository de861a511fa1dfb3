package cli

import (
	"context"

	"pocketratings/config"
	"pocketratings/internal/infra/persistence/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newDatabaseCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "database",
		Aliases: []string{"db"},
		Short:   "Database maintenance",
	}

	cmd.AddCommand(newDatabaseBackupCommand(opts))

	return cmd
}

func newDatabaseBackupCommand(opts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent snapshot of the SQLite database",
		Long: `Copy the SQLite database with VACUUM INTO while the server may keep running.
The snapshot defaults to the database path with a .backup suffix and is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db  *gorm.DB
				cfg *config.Config
			)

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				path := out
				if path == "" {
					path = database.DefaultBackupPath(cfg.Database.SQLitePath)
				}
				if err := database.Backup(ctx, db, path); err != nil {
					return err
				}

				return opts.printer(cmd).Done("backup written to %s", path)
			}, &db, &cfg)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "snapshot path")

	return cmd
}
