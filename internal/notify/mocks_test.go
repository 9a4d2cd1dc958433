package notify

import (
	"sync"
)

// MockSender records sender calls and returns configurable errors.
type MockSender struct {
	mu sync.Mutex

	VisualError error
	SoundError  error

	VisualCalls []string // "title|message"
	SoundCalls  []string // sound file argument
}

// NewMockSender creates a mock sender with no errors configured.
func NewMockSender() *MockSender {
	return &MockSender{}
}

// WithVisualError configures the mock to fail SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to fail SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

func (m *MockSender) SendVisual(title, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VisualCalls = append(m.VisualCalls, title+"|"+message)
	return m.VisualError
}

func (m *MockSender) SendSound(soundFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SoundCalls = append(m.SoundCalls, soundFile)
	return m.SoundError
}

func (m *MockSender) VisualAvailable() bool { return true }
func (m *MockSender) SoundAvailable() bool  { return true }

// MockMailer records mail sends and returns a configurable error.
type MockMailer struct {
	mu sync.Mutex

	Err      error
	Subjects []string
	Texts    []string
	HTMLs    []string
}

func (m *MockMailer) Send(subject, textBody, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subjects = append(m.Subjects, subject)
	m.Texts = append(m.Texts, textBody)
	m.HTMLs = append(m.HTMLs, htmlBody)
	return m.Err
}

// blockingMailer stalls Send until release is closed, imitating an SMTP
// server that accepts the connection but never answers.
type blockingMailer struct {
	release chan struct{}
}

func (m *blockingMailer) Send(_, _, _ string) error {
	<-m.release
	return nil
}
