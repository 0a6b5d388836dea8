// Package notify delivers case alerts to the desktop notification system.
//
// A Sender has one capability: show a notification with a title, a body and
// a sound name. Backends are chosen by name so the alerting logic never
// touches an OS facility directly.
//
// # Backends
//
//   - osascript: macOS Notification Center via "display notification", with
//     the named system sound
//   - beeep: cross-platform notifications through github.com/gen2brain/beeep;
//     a requested sound plays the platform default alert sound
//   - stdout: writes the notification as text, for scripts and dry runs
//
// "auto" resolves to osascript on darwin and beeep everywhere else.
//
// # Usage
//
//	sender, err := notify.NewSender(notify.BackendAuto, os.Stdout)
//	if err != nil {
//		return err
//	}
//	err = sender.Send(ctx, notify.CaseAlert("3 B2Bi Case(s)"))
package notify
