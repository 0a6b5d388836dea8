package cli

import (
	"errors"

	"github.com/casealert/casealert/internal/cases"
	clierrors "github.com/casealert/casealert/internal/errors"
	"github.com/casealert/casealert/internal/notify"
)

// Exit codes for the casealert CLI
const (
	// ExitSuccess covers both a sent alert and nothing to alert
	ExitSuccess = 0

	// ExitArgumentCount indicates the number of counts was not seven
	ExitArgumentCount = 1

	// ExitArgumentFormat indicates a count was not an integer
	ExitArgumentFormat = 2

	// ExitInvalidConfig indicates settings failed to load or validate
	ExitInvalidConfig = 3

	// ExitDispatchFailed indicates the notification backend failed
	ExitDispatchFailed = 4
)

// ExitCode returns the process exit code for err.
// Errors outside the categories above exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var countErr *cases.ArgumentCountError
	var formatErr *cases.ArgumentFormatError
	var dispatchErr *notify.DispatchError
	switch {
	case errors.As(err, &countErr):
		return ExitArgumentCount
	case errors.As(err, &formatErr):
		return ExitArgumentFormat
	case errors.As(err, &dispatchErr):
		return ExitDispatchFailed
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil && cliErr.Category == clierrors.Configuration {
		return ExitInvalidConfig
	}
	return 1
}
