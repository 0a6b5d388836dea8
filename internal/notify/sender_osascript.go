package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrOsascriptMissing is returned when the osascript binary is not in PATH
var ErrOsascriptMissing = errors.New("osascript not found in PATH")

// osascriptSender implements Sender for macOS Notification Center
type osascriptSender struct {
	available func() bool
	run       func(ctx context.Context, name string, args ...string) error
}

// newOsascriptSender creates a sender that shells out to osascript
func newOsascriptSender() *osascriptSender {
	return &osascriptSender{
		available: func() bool { return toolAvailable("osascript") },
		run:       runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (s *osascriptSender) Name() string { return BackendOsascript }

// Send displays the notification with osascript
func (s *osascriptSender) Send(ctx context.Context, n Notification) error {
	if !s.available() {
		return ErrOsascriptMissing
	}
	return s.run(ctx, "osascript", "-e", displayScript(n))
}

// displayScript builds the AppleScript "display notification" statement
func displayScript(n Notification) string {
	var b strings.Builder
	b.WriteString("display notification ")
	b.WriteString(appleScriptQuote(n.Body))
	b.WriteString(" with title ")
	b.WriteString(appleScriptQuote(n.Title))
	if n.Sound != "" {
		b.WriteString(" sound name ")
		b.WriteString(appleScriptQuote(n.Sound))
	}
	return b.String()
}

// appleScriptQuote wraps s in an AppleScript string literal.
// Only backslash and double quote need escaping; newlines stay literal.
func appleScriptQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
