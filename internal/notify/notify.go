package notify

// Config holds the channel toggles for notification dispatch.
// Loaded from the [notifications] section of the config hierarchy.
type Config struct {
	// DesktopEnabled fires an OS toast notification (default: true)
	DesktopEnabled bool `koanf:"desktop_enabled"`

	// SoundEnabled plays an audible alert (default: true)
	SoundEnabled bool `koanf:"sound_enabled"`

	// EmailEnabled sends an email via SMTP (default: false, needs [email])
	EmailEnabled bool `koanf:"email_enabled"`

	// SoundFile is an optional custom sound file path
	SoundFile string `koanf:"sound_file"`
}

// DefaultConfig returns the channel toggles used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DesktopEnabled: true,
		SoundEnabled:   true,
		EmailEnabled:   false,
	}
}

// EmailConfig holds SMTP settings for the email channel.
// Required fields are enforced only when the email channel is enabled.
type EmailConfig struct {
	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     int    `koanf:"smtp_port"`
	SMTPUser     string `koanf:"smtp_user"`
	SMTPPassword string `koanf:"smtp_password"`
	Recipient    string `koanf:"recipient" validate:"omitempty,email"`
	SenderName   string `koanf:"sender_name"`
}
