package notify

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Sender defines the interface for platform-specific notification senders
type Sender interface {
	// SendVisual shows a desktop toast with the given title and body
	SendVisual(title, message string) error

	// SendSound plays an audible alert, optionally from a custom file
	SendSound(soundFile string) error

	// VisualAvailable returns true if desktop notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound alerts are supported
	SoundAvailable() bool
}

// NewSender creates a platform-specific notification sender based on the
// current OS. For unsupported platforms it returns a no-op sender, so a
// headless run degrades silently instead of failing dispatch.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &noopSender{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (s *noopSender) SendVisual(_, _ string) error { return nil }
func (s *noopSender) SendSound(_ string) error     { return nil }
func (s *noopSender) VisualAvailable() bool        { return false }
func (s *noopSender) SoundAvailable() bool         { return false }

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks if the sound file exists and has a supported
// format. Returns the validated path, or empty string to fall back to the
// platform default sound. Invalid files are logged, never fatal.
func ValidateSoundFile(soundFile string) string {
	if soundFile == "" {
		return ""
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		slog.Warn("custom sound file not usable, falling back to default",
			"path", soundFile, "err", err)
		return ""
	}
	if info.IsDir() {
		slog.Warn("sound path is a directory, falling back to default",
			"path", soundFile)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		slog.Warn("unsupported audio format, falling back to default",
			"ext", ext, "path", soundFile)
		return ""
	}

	return soundFile
}
