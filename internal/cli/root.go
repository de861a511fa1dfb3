// Package cli is the pocketratings command line: the HTTP server plus catalog administration.
package cli

import (
	"context"
	"io"
	"os"

	"pocketratings/config"
	"pocketratings/internal/cli/output"
	requestvalidator "pocketratings/internal/delivery/http/validator"
	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/lifecycle"
	"pocketratings/internal/errors"
	"pocketratings/internal/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// inputValidator applies the same validate tags as the HTTP API.
var inputValidator = requestvalidator.New()

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string
	Verbose    bool
}

func (o *RootOptions) printer(cmd *cobra.Command) *output.Printer {
	return &output.Printer{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// applyToConfig lets command line flags win over the loaded configuration.
func (o *RootOptions) applyToConfig(cfg *config.Config) *config.Config {
	if o.Verbose {
		cfg.Env.Log.Level = "debug"
	}

	return cfg
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "pocketratings",
		Short:   "Track purchases and rate the products you buy",
		Version: version.Version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !output.ValidFormat(opts.Format) {
				return domainerrors.ErrValidationFailed.WithDetails("format: must be text or json")
			}
			if opts.ConfigPath != "" {
				config.SetPath(opts.ConfigPath)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a config .yaml file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", output.FormatText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output and debug logging")

	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newCategoryCommand(opts),
		newProductCommand(opts),
		newLocationCommand(opts),
		newUserCommand(opts),
		newPurchaseCommand(opts),
		newReviewCommand(opts),
		newDatabaseCommand(opts),
	)

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	printer := &output.Printer{Format: output.FormatText, Writer: stdout, ErrWriter: stderr}
	if cmd != nil {
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if output.ValidFormat(format) {
			printer.Format = format
		}
		printer.Verbose = verbose
	}
	if writeErr := printer.Failure(err); writeErr != nil {
		_, _ = io.WriteString(os.Stderr, writeErr.Error()+"\n")
	}

	return 1
}

// withApp starts the service graph, fills targets and stops the graph after run returns.
func withApp(ctx context.Context, opts *RootOptions, run func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		coreOptions(opts),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := run(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return runErr
}

// parseID parses a positional id argument.
func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id: must be a uuid")
	}

	return id, nil
}

// parseOptionalID parses an id flag where the empty string means unset.
func parseOptionalID(name, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a uuid")
	}

	return &id, nil
}
