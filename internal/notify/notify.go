package notify

import "fmt"

const (
	// CaseAlertTitle is the fixed title of every case alert
	CaseAlertTitle = "SalesForce Case Alert:"
	// CaseAlertSound is the macOS system sound played with a case alert
	CaseAlertSound = "Funk"
)

// Notification is a single notification to dispatch
type Notification struct {
	// Title is the notification title
	Title string

	// Body is the notification text, possibly spanning several lines
	Body string

	// Sound is a system sound name; empty means silent
	Sound string
}

// NewNotification creates a Notification with the given parameters
func NewNotification(title, body, sound string) Notification {
	return Notification{
		Title: title,
		Body:  body,
		Sound: sound,
	}
}

// CaseAlert builds the case alert notification for the given body.
func CaseAlert(body string) Notification {
	return NewNotification(CaseAlertTitle, body, CaseAlertSound)
}

// DispatchError reports a notification the backend failed to deliver.
type DispatchError struct {
	Backend string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s notification failed: %v", e.Backend, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
