package cli

import (
	"context"

	"pocketratings/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type deleteRun struct {
	id   uuid.UUID
	mode usecase.DeleteMode
}

// newDeleteCommand builds "<kind> delete <id> [--force]". remove performs the delete.
func newDeleteCommand(opts *RootOptions, kind string, remove func(ctx context.Context, run deleteRun) error) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + kind,
		Long: "Soft delete a " + kind + " by stamping deleted_at.\n" +
			"With --force the row is removed, which fails while other rows still reference it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			run := deleteRun{id: id, mode: usecase.SoftDelete}
			if force {
				run.mode = usecase.HardDelete
			}

			if err := remove(cmd.Context(), run); err != nil {
				return err
			}

			return opts.printer(cmd).Done("%s %s deleted (%s)", kind, id, run.mode)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "hard delete instead of soft delete")

	return cmd
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}

	return id.String()
}
