package notify

import (
	"context"
	"fmt"
	"io"
)

// stdoutSender writes notifications as plain text instead of showing them
type stdoutSender struct {
	out io.Writer
}

func newStdoutSender(out io.Writer) *stdoutSender {
	return &stdoutSender{out: out}
}

func (s *stdoutSender) Name() string { return BackendStdout }

// Send prints the title, then the body, then the sound name if any
func (s *stdoutSender) Send(_ context.Context, n Notification) error {
	if _, err := fmt.Fprintln(s.out, n.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.out, n.Body); err != nil {
		return err
	}
	if n.Sound != "" {
		if _, err := fmt.Fprintf(s.out, "(sound: %s)\n", n.Sound); err != nil {
			return err
		}
	}
	return nil
}
