package errors

import (
	"errors"
	"fmt"

	"github.com/casealert/casealert/internal/cases"
	"github.com/casealert/casealert/internal/notify"
)

var usageLine = "casealert " + cases.Usage()

// WrongArgumentCount is returned when the positional count is not seven
func WrongArgumentCount(err *cases.ArgumentCountError) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Usage:    usageLine,
		Remediation: []string{
			fmt.Sprintf("Pass exactly %d counts, one per product, in the order shown above", cases.NumCategories),
			"Use 0 for products without new cases",
		},
		Err: err,
	}
}

// InvalidCount is returned when a count is not an integer
func InvalidCount(err *cases.ArgumentFormatError) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Usage:    usageLine,
		Remediation: []string{
			"Counts must be base-10 integers such as 0, 3 or -1",
		},
		Err: err,
	}
}

// InvalidConfig is returned when settings fail to load or validate
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "invalid configuration",
		"Check ~/.casealert/config.json or the file named by CASEALERT_CONFIG",
		fmt.Sprintf("CASEALERT_BACKEND must be one of %v", notify.Backends),
		"CASEALERT_LOG_LEVEL must be one of debug, info, warn, error",
	)
}

// NotificationFailed is returned when the notification backend fails
func NotificationFailed(err *notify.DispatchError) *CLIError {
	remediation := []string{
		"Set CASEALERT_BACKEND=stdout to print the alert instead",
	}
	switch err.Backend {
	case notify.BackendOsascript:
		remediation = append([]string{"Make sure osascript is available (macOS only)"}, remediation...)
	case notify.BackendBeeep:
		remediation = append([]string{"Make sure a desktop session with a notification daemon is running"}, remediation...)
	}
	category := Runtime
	if errors.Is(err, notify.ErrOsascriptMissing) || errors.Is(err, notify.ErrNoDisplay) {
		category = Prerequisite
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}
