package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pocketratings/internal/domain/lifecycle"
	"pocketratings/internal/errors"
	"pocketratings/internal/infra/persistence/database"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, opts, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")

	return cmd
}

func runServe(ctx context.Context, opts *RootOptions, migrate bool) error {
	var options []fx.Option
	if migrate {
		// Invoked before the server starts; the hook lands after database.New's ping.
		options = append(options, fx.Invoke(func(lc fx.Lifecycle, db *gorm.DB) {
			lc.Append(fx.Hook{OnStart: func(ctx context.Context) error {
				return database.Migrate(ctx, db)
			}})
		}))
	}
	options = append(options, serverOptions(opts))

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build server")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start server")
	}

	var exitCode int
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	}

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		return errors.Wrap(err, "stop server")
	}
	if exitCode != 0 {
		return errors.Errorf("server exited with code %d", exitCode)
	}

	return nil
}
