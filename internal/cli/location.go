package cli

import (
	"context"
	"io"

	"pocketratings/internal/cli/output"
	"pocketratings/internal/delivery/presenter"
	"pocketratings/internal/domain/entity"
	"pocketratings/internal/usecase"

	"github.com/spf13/cobra"
)

func newLocationCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"locations"},
		Short:   "Manage shopping locations",
	}

	cmd.AddCommand(
		newLocationListCommand(opts),
		newLocationShowCommand(opts),
		newLocationCreateCommand(opts),
		newLocationUpdateCommand(opts),
		newLocationDeleteCommand(opts),
	)

	return cmd
}

func newLocationListCommand(opts *RootOptions) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var locations usecase.LocationUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				list, err := locations.ListLocations(ctx, includeDeleted)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewLocations(list), func(w io.Writer) {
					rows := make([][]string, 0, len(list))
					for _, l := range list {
						state := "active"
						if !l.IsActive() {
							state = "deleted"
						}
						rows = append(rows, []string{l.ID().String(), l.Name(), state})
					}
					output.Table(w, []string{"ID", "NAME", "STATE"}, rows)
				})
			}, &locations)
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted locations")

	return cmd
}

func printLocation(opts *RootOptions, cmd *cobra.Command, location *entity.Location) error {
	return opts.printer(cmd).Result(presenter.NewLocation(location), func(w io.Writer) {
		output.Table(w, []string{"ID", "NAME"}, [][]string{{location.ID().String(), location.Name()}})
	})
}

func newLocationShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var locations usecase.LocationUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				location, err := locations.GetLocation(ctx, id)
				if err != nil {
					return err
				}

				return printLocation(opts, cmd, location)
			}, &locations)
		},
	}
}

func newLocationCreateCommand(opts *RootOptions) *cobra.Command {
	var input usecase.CreateLocationInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := inputValidator.Validate(&input); err != nil {
				return err
			}

			var locations usecase.LocationUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				location, err := locations.CreateLocation(ctx, &input)
				if err != nil {
					return err
				}

				return printLocation(opts, cmd, location)
			}, &locations)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "location name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLocationUpdateCommand(opts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var locations usecase.LocationUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				location, err := locations.UpdateLocation(ctx, id, &usecase.UpdateLocationInput{Name: &name})
				if err != nil {
					return err
				}

				return printLocation(opts, cmd, location)
			}, &locations)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLocationDeleteCommand(opts *RootOptions) *cobra.Command {
	return newDeleteCommand(opts, "location", func(ctx context.Context, run deleteRun) error {
		var locations usecase.LocationUsecase

		return withApp(ctx, opts, func(ctx context.Context) error {
			return locations.DeleteLocation(ctx, run.id, run.mode)
		}, &locations)
	})
}
