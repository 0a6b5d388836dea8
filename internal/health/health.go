// Package health checks whether the host can display case alerts.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/casealert/casealert/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Env abstracts the host lookups the checks depend on
type Env struct {
	GOOS     string
	LookPath func(file string) (string, error)
	Getenv   func(key string) string
}

// HostEnv returns an Env backed by the running process
func HostEnv() Env {
	return Env{
		GOOS:     notify.Platform(),
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
	}
}

// RunHealthChecks checks the given notification backend and returns a report
func RunHealthChecks(backend string, env Env) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	resolved := notify.ResolveBackendFor(backend, env.GOOS)
	switch resolved {
	case notify.BackendOsascript:
		add(CheckTool(env, "osascript"))
	case notify.BackendBeeep:
		// beeep talks to the notification daemon over D-Bus and needs a session
		if env.GOOS == "linux" {
			add(CheckDisplay(env))
		}
	case notify.BackendStdout:
	default:
		add(CheckResult{
			Name:    "Backend",
			Passed:  false,
			Message: fmt.Sprintf("unknown notification backend %q", backend),
		})
		return report
	}

	report.Checks = append([]CheckResult{{
		Name:    "Backend",
		Passed:  true,
		Message: fmt.Sprintf("using %s backend", resolved),
	}}, report.Checks...)
	return report
}

// CheckTool checks if a command-line tool is available in PATH
func CheckTool(env Env, name string) CheckResult {
	if _, err := env.LookPath(name); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH", name),
		}
	}
	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%s found", name),
	}
}

// CheckDisplay checks for an X11 or Wayland session
func CheckDisplay(env Env) CheckResult {
	for _, key := range []string{"WAYLAND_DISPLAY", "DISPLAY"} {
		if v := env.Getenv(key); v != "" {
			return CheckResult{
				Name:    "Display",
				Passed:  true,
				Message: fmt.Sprintf("%s=%s", key, v),
			}
		}
	}
	return CheckResult{
		Name:    "Display",
		Passed:  false,
		Message: "neither DISPLAY nor WAYLAND_DISPLAY is set",
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "✗ Error: %s\n", check.Message)
		}
	}
	return b.String()
}
