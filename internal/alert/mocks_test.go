package alert

import (
	"context"
	"errors"
	"sync"

	"github.com/casealert/casealert/internal/notify"
)

// MockSender records every notification it is asked to send.
type MockSender struct {
	mu sync.Mutex

	SendError error
	Calls     []notify.Notification
}

func NewMockSender() *MockSender {
	return &MockSender{Calls: make([]notify.Notification, 0)}
}

// WithSendError configures the mock to fail every Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

func (m *MockSender) Send(_ context.Context, n notify.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, n)
	return m.SendError
}

func (m *MockSender) Name() string { return "mock" }

// CallCount returns how many times Send was called
func (m *MockSender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

var ErrMockSend = errors.New("mock send error")
