package config

// DefaultURL is the EAS Milan date listing for the remote TOEIC session.
const DefaultURL = "https://www.eas-milano.org/index.php?f=date_esami.php"

// GetDefaults returns the built-in configuration defaults, keyed by the
// koanf paths the providers use.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"monitor.url":                   DefaultURL,
		"monitor.poll_interval":         60,
		"monitor.timeout":               30,
		"monitor.log_file":              "easwatch.log",
		"notifications.desktop_enabled": true,
		"notifications.sound_enabled":   true,
		"notifications.email_enabled":   false,
		"notifications.sound_file":      "",
		"email.smtp_port":               587,
		"email.sender_name":             "easwatch",
	}
}
