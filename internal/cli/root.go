// Package cli provides the Cobra-based command line for casealert.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/casealert/casealert/internal/alert"
	"github.com/casealert/casealert/internal/cases"
	"github.com/casealert/casealert/internal/config"
	"github.com/casealert/casealert/internal/ctxlog"
	clierrors "github.com/casealert/casealert/internal/errors"
	"github.com/casealert/casealert/internal/health"
	"github.com/casealert/casealert/internal/notify"
	"github.com/spf13/cobra"
)

// options holds the collaborators of the root command so tests can swap
// the notification backend and output streams.
type options struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (*config.Configuration, error)
	newSender  func(backend string, out io.Writer) (notify.Sender, error)
	hostEnv    func() health.Env
}

func defaultOptions() options {
	return options{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: config.Load,
		newSender:  notify.NewSender,
		hostEnv:    health.HostEnv,
	}
}

// NewRootCmd creates the casealert root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultOptions())
}

func newRootCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casealert " + cases.Usage(),
		Short: "Show a desktop notification summarizing new support cases",
		Long: `Show a desktop notification summarizing new support cases.

Takes one count per product, in fixed order, and lists every product with a
positive count in a single "SalesForce Case Alert:" notification. When no
count is positive, nothing is shown.

Configuration (environment variables override ~/.casealert/config.json):
  CASEALERT_BACKEND     auto, osascript, beeep or stdout (default auto)
  CASEALERT_LOG_LEVEL   debug, info, warn or error (default warn)
  CASEALERT_LOG_FORMAT  text or json (default text)
  CASEALERT_CONFIG      config file path; empty disables the file`,
		Example: `  # 3 B2Bi cases and 5 API cases
  casealert 3 0 0 0 5 0 0

  # Nothing to report, no notification
  casealert 0 0 0 0 0 0 0

  # Print the alert instead of showing it
  CASEALERT_BACKEND=stdout casealert 1 2 0 0 5 0 0`,
		// Counts may be negative, so "-1" must not be parsed as a flag
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			// Flag parsing is off, so a conventional "--" arrives as an argument
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return runAlert(cmd, args, opts)
		},
	}

	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDoctorCmd(opts))
	return cmd
}

func runAlert(cmd *cobra.Command, args []string, opts options) error {
	// Checked before anything else: a wrong count does no further work
	if len(args) != cases.NumCategories {
		return clierrors.WrongArgumentCount(&cases.ArgumentCountError{Got: len(args)})
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return clierrors.InvalidConfig(err)
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, opts.stderr)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	sender, err := opts.newSender(cfg.Backend, opts.stdout)
	if err != nil {
		return clierrors.InvalidConfig(err)
	}
	logger.Debug("notification backend ready", "backend", sender.Name(), "platform", notify.Platform())

	err = alert.New(sender).Run(ctx, args)

	var countErr *cases.ArgumentCountError
	var formatErr *cases.ArgumentFormatError
	var dispatchErr *notify.DispatchError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &countErr):
		return clierrors.WrongArgumentCount(countErr)
	case errors.As(err, &formatErr):
		return clierrors.InvalidCount(formatErr)
	case errors.As(err, &dispatchErr):
		return clierrors.NotificationFailed(dispatchErr)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}

// Execute runs the root command and reports any error on stderr
func Execute() error {
	return execute(NewRootCmd(), os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(stderr, cliErr)
	} else {
		fmt.Fprint(stderr, clierrors.FormatSimpleError(err, clierrors.Runtime))
	}
	return err
}
