package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Backend names accepted by NewSender
const (
	BackendAuto      = "auto"
	BackendOsascript = "osascript"
	BackendBeeep     = "beeep"
	BackendStdout    = "stdout"
)

// Backends lists every backend name in the order shown to users
var Backends = []string{BackendAuto, BackendOsascript, BackendBeeep, BackendStdout}

// Sender defines the interface for notification backends
type Sender interface {
	// Send dispatches one notification, blocking until the backend returns
	Send(ctx context.Context, n Notification) error

	// Name returns the backend name, e.g. "osascript"
	Name() string
}

// NewSender creates the sender registered under backend. BackendAuto picks
// osascript on darwin and beeep on every other platform. out receives the
// stdout backend's output and is ignored by the others.
func NewSender(backend string, out io.Writer) (Sender, error) {
	switch ResolveBackend(backend) {
	case BackendOsascript:
		return newOsascriptSender(), nil
	case BackendBeeep:
		return newBeeepSender(), nil
	case BackendStdout:
		if out == nil {
			out = os.Stdout
		}
		return newStdoutSender(out), nil
	default:
		return nil, fmt.Errorf("unknown notification backend %q (want one of %v)", backend, Backends)
	}
}

// ResolveBackend maps BackendAuto to the default of the running platform
// and returns any other name unchanged.
func ResolveBackend(backend string) string {
	return ResolveBackendFor(backend, Platform())
}

// ResolveBackendFor is ResolveBackend for the platform named by goos.
func ResolveBackendFor(backend, goos string) string {
	if backend != BackendAuto {
		return backend
	}
	if goos == "darwin" {
		return BackendOsascript
	}
	return BackendBeeep
}

// ValidBackend checks if the given string names a backend
func ValidBackend(s string) bool {
	for _, b := range Backends {
		if s == b {
			return true
		}
	}
	return false
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// hasDisplay checks if an X11 or Wayland display is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
