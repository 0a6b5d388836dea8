package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseAlert(t *testing.T) {
	t.Parallel()
	n := CaseAlert("3 B2Bi Case(s)")

	assert.Equal(t, "SalesForce Case Alert:", n.Title)
	assert.Equal(t, "Funk", n.Sound)
	assert.Equal(t, "3 B2Bi Case(s)", n.Body)
}

func TestNewNotification(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		title string
		body  string
		sound string
	}{
		"with sound": {
			title: "title",
			body:  "body",
			sound: "Glass",
		},
		"silent": {
			title: "title",
			body:  "line one\nline two",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNotification(tt.title, tt.body, tt.sound)
			assert.Equal(t, Notification{Title: tt.title, Body: tt.body, Sound: tt.sound}, n)
		})
	}
}

func TestDispatchError(t *testing.T) {
	t.Parallel()
	cause := errors.New("exit status 1")
	err := &DispatchError{Backend: BackendOsascript, Err: cause}

	assert.Equal(t, "osascript notification failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
}
