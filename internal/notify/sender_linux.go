//go:build linux

package notify

import (
	"os"
	"os/exec"
)

// linuxSender implements Sender for Linux using notify-send and paplay
type linuxSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newLinuxSender creates a new Linux notification sender
func newLinuxSender() Sender {
	return &linuxSender{
		visualAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable:  toolAvailable("paplay"),
	}
}

// newDarwinSender returns a no-op sender on linux
func newDarwinSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on linux
func newWindowsSender() Sender {
	return &noopSender{}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// SendVisual sends a desktop notification using notify-send.
// Slot alerts are marked critical so they stay on screen until dismissed.
func (s *linuxSender) SendVisual(title, message string) error {
	if !s.visualAvailable {
		return nil // graceful degradation
	}

	cmd := exec.Command("notify-send", "-u", "critical", "-a", "easwatch", title, message)
	return cmd.Run()
}

// SendSound plays a sound using paplay
func (s *linuxSender) SendSound(soundFile string) error {
	if !s.soundAvailable {
		return nil // graceful degradation
	}

	validatedFile := ValidateSoundFile(soundFile)

	// No bundled sound, try the freedesktop alert before giving up
	if validatedFile == "" {
		validatedFile = "/usr/share/sounds/freedesktop/stereo/complete.oga"
		if _, err := os.Stat(validatedFile); err != nil {
			return nil // no sound to play, skip silently
		}
	}

	cmd := exec.Command("paplay", validatedFile)
	return cmd.Run()
}

// VisualAvailable returns true if notify-send is available and a display is present
func (s *linuxSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if paplay is available
func (s *linuxSender) SoundAvailable() bool {
	return s.soundAvailable
}
