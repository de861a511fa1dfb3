package cli

import (
	"context"
	"io"
	"os"

	"pocketratings/internal/cli/output"
	"pocketratings/internal/delivery/presenter"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/usecase"

	"github.com/spf13/cobra"
)

// passwordEnv is read when --password is not given, keeping secrets out of shell history.
const passwordEnv = "POCKETRATINGS_PASSWORD"

func newUserCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage user accounts",
	}

	cmd.AddCommand(
		newUserRegisterCommand(opts),
		newUserListCommand(opts),
		newUserDeleteCommand(opts),
	)

	return cmd
}

func newUserRegisterCommand(opts *RootOptions) *cobra.Command {
	var input usecase.RegisterUserInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input.Password == "" {
				input.Password = os.Getenv(passwordEnv)
			}
			if input.Password == "" {
				return domainerrors.ErrValidationFailed.WithDetails("password: set --password or " + passwordEnv)
			}
			if err := inputValidator.Validate(&input); err != nil {
				return err
			}

			var users usecase.UserUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				user, err := users.RegisterUser(ctx, &input)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewUser(user), func(w io.Writer) {
					output.Table(w, []string{"ID", "NAME", "EMAIL"}, [][]string{
						{user.ID().String(), user.Name(), user.Email()},
					})
				})
			}, &users)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Email, "email", "", "login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (defaults to $"+passwordEnv+")")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserListCommand(opts *RootOptions) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var users usecase.UserUsecase

			return withApp(cmd.Context(), opts, func(ctx context.Context) error {
				list, err := users.ListUsers(ctx, includeDeleted)
				if err != nil {
					return err
				}

				return opts.printer(cmd).Result(presenter.NewUsers(list), func(w io.Writer) {
					rows := make([][]string, 0, len(list))
					for _, u := range list {
						state := "active"
						if !u.IsActive() {
							state = "deleted"
						}
						rows = append(rows, []string{u.ID().String(), u.Name(), u.Email(), state})
					}
					output.Table(w, []string{"ID", "NAME", "EMAIL", "STATE"}, rows)
				})
			}, &users)
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include soft-deleted users")

	return cmd
}

func newUserDeleteCommand(opts *RootOptions) *cobra.Command {
	return newDeleteCommand(opts, "user", func(ctx context.Context, run deleteRun) error {
		var users usecase.UserUsecase

		return withApp(ctx, opts, func(ctx context.Context) error {
			return users.DeleteUser(ctx, run.id, run.mode)
		}, &users)
	})
}
