package notify

import (
	"context"
	"errors"

	"github.com/gen2brain/beeep"
)

// ErrNoDisplay is returned on Linux when neither X11 nor Wayland is available
var ErrNoDisplay = errors.New("no display available for desktop notifications")

// beeepSender implements Sender with github.com/gen2brain/beeep
type beeepSender struct {
	notify  func(title, message string) error
	alert   func(title, message string) error
	display func() bool
}

// newBeeepSender creates a sender backed by beeep
func newBeeepSender() *beeepSender {
	return &beeepSender{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		alert: func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
		display: func() bool {
			return Platform() != "linux" || hasDisplay()
		},
	}
}

func (s *beeepSender) Name() string { return BackendBeeep }

// Send shows the notification. Named sounds only exist on macOS, so any
// requested sound becomes the platform's default alert sound.
func (s *beeepSender) Send(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.display() {
		return ErrNoDisplay
	}
	if n.Sound != "" {
		return s.alert(n.Title, n.Body)
	}
	return s.notify(n.Title, n.Body)
}
