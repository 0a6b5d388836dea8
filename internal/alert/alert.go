// Package alert turns positional case counts into at most one desktop
// notification.
package alert

import (
	"context"

	"github.com/casealert/casealert/internal/cases"
	"github.com/casealert/casealert/internal/ctxlog"
	"github.com/casealert/casealert/internal/notify"
)

// Alerter parses case counts and dispatches the case alert.
type Alerter struct {
	sender notify.Sender
}

// New creates an Alerter that dispatches through sender.
func New(sender notify.Sender) *Alerter {
	return &Alerter{sender: sender}
}

// Run parses args as the seven case counts and sends one notification
// listing every positive count. When no count is positive nothing is sent.
//
// Errors are *cases.ArgumentCountError, *cases.ArgumentFormatError or
// *notify.DispatchError. No notification is sent on argument errors.
func (a *Alerter) Run(ctx context.Context, args []string) error {
	logger := ctxlog.FromContext(ctx)

	counts, err := cases.ParseCounts(args)
	if err != nil {
		return err
	}
	logger.Debug("parsed case counts", "counts", counts.Strings(), "total", counts.Total().String())

	msg := counts.Message()
	if msg == "" {
		logger.Debug("no positive case counts, skipping notification")
		return nil
	}

	if err := a.sender.Send(ctx, notify.CaseAlert(msg)); err != nil {
		return &notify.DispatchError{Backend: a.sender.Name(), Err: err}
	}
	logger.Info("case alert sent", "backend", a.sender.Name(), "lines", len(counts.Fragments()))
	return nil
}
