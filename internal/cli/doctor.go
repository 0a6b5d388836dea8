package cli

import (
	"fmt"

	clierrors "github.com/casealert/casealert/internal/errors"
	"github.com/casealert/casealert/internal/health"
	"github.com/spf13/cobra"
)

func newDoctorCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that case alerts can be displayed",
		Long: `Check that the configured notification backend can run on this host.

Reports the resolved backend and, depending on it, whether osascript is in
PATH (macOS) or a desktop display session is available (Linux).`,
		Example: `  casealert doctor
  CASEALERT_BACKEND=beeep casealert doctor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return clierrors.InvalidConfig(err)
			}

			report := health.RunHealthChecks(cfg.Backend, opts.hostEnv())
			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

			if !report.Passed {
				return clierrors.NewPrerequisiteError("notification backend is not ready",
					"Install the missing tool or start a desktop session",
					"Set CASEALERT_BACKEND=stdout to print alerts instead",
				)
			}
			return nil
		},
	}
}
