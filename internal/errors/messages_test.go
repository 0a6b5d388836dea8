// Package errors_test tests the CLI errors built for argument, config and dispatch failures.
// Related: internal/errors/messages.go
// Tags: errors, cli-errors, messages, remediation, error-categories
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/casealert/casealert/internal/cases"
	"github.com/casealert/casealert/internal/notify"
)

func TestWrongArgumentCount(t *testing.T) {
	cause := &cases.ArgumentCountError{Got: 5}
	err := WrongArgumentCount(cause)

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "got 5") {
		t.Errorf("Expected message to contain argument count, got %q", err.Message)
	}
	if !strings.Contains(err.Usage, "<sentinel>") {
		t.Errorf("Expected usage to list positional arguments, got %q", err.Usage)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected CLIError to wrap the count error")
	}
}

func TestInvalidCount(t *testing.T) {
	err := InvalidCount(&cases.ArgumentFormatError{Field: "api", Value: "x", Err: cases.ErrNotInteger})

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, `"x"`) {
		t.Error("Expected message to contain the bad value")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestInvalidConfig(t *testing.T) {
	err := InvalidConfig(fmt.Errorf("backend: oneof"))

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if err.Message != "invalid configuration: backend: oneof" {
		t.Errorf("Unexpected message %q", err.Message)
	}
}

func TestNotificationFailed(t *testing.T) {
	tests := map[string]struct {
		err          *notify.DispatchError
		wantCategory ErrorCategory
		wantSteps    int
	}{
		"osascript missing": {
			err:          &notify.DispatchError{Backend: notify.BackendOsascript, Err: notify.ErrOsascriptMissing},
			wantCategory: Prerequisite,
			wantSteps:    2,
		},
		"no display": {
			err:          &notify.DispatchError{Backend: notify.BackendBeeep, Err: notify.ErrNoDisplay},
			wantCategory: Prerequisite,
			wantSteps:    2,
		},
		"command failure": {
			err:          &notify.DispatchError{Backend: notify.BackendOsascript, Err: errors.New("exit status 1")},
			wantCategory: Runtime,
			wantSteps:    2,
		},
		"stdout failure": {
			err:          &notify.DispatchError{Backend: notify.BackendStdout, Err: errors.New("broken pipe")},
			wantCategory: Runtime,
			wantSteps:    1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NotificationFailed(tt.err)
			if err.Category != tt.wantCategory {
				t.Errorf("Expected %v, got %v", tt.wantCategory, err.Category)
			}
			if len(err.Remediation) != tt.wantSteps {
				t.Errorf("Expected %d remediation steps, got %d", tt.wantSteps, len(err.Remediation))
			}
			var dispatchErr *notify.DispatchError
			if !errors.As(err, &dispatchErr) {
				t.Error("Expected CLIError to wrap the dispatch error")
			}
		})
	}
}
