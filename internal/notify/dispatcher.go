// Package notify fans availability alerts out to the configured channels:
// desktop toast, audible alert, and SMTP email. Channels fail
// independently; a broken channel is logged and never stops the others or
// the caller.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gbertoni/easwatch/internal/exam"
)

// toastBodyLimit caps the toast message length (Windows truncates the
// toast body around this size).
const toastBodyLimit = 256

// channelTimeout bounds each channel. Toast and sound run through
// external tools that can hang, and an SMTP server can stall
// mid-handshake; dispatch must not.
const channelTimeout = 10 * time.Second

// Dispatcher delivers one batch of newly available sessions across the
// enabled channels.
type Dispatcher struct {
	cfg    Config
	sender Sender
	mailer Mailer
}

// NewDispatcher creates a dispatcher with the platform sender and an SMTP
// mailer built from emailCfg.
func NewDispatcher(cfg Config, emailCfg EmailConfig) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		sender: NewSender(),
		mailer: NewSMTPMailer(emailCfg),
	}
}

// NewDispatcherWith creates a dispatcher with explicit collaborators
// (for testing).
func NewDispatcherWith(cfg Config, sender Sender, mailer Mailer) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		sender: sender,
		mailer: mailer,
	}
}

// Config returns the dispatcher's channel configuration.
func (d *Dispatcher) Config() Config {
	return d.cfg
}

// Dispatch delivers the batch to every enabled channel. available is
// expected in document order and non-empty; sourceURL points back to the
// monitored page for the email body.
func (d *Dispatcher) Dispatch(ctx context.Context, title string, available []exam.Session, sourceURL string) {
	if len(available) == 0 {
		return
	}

	if d.cfg.DesktopEnabled {
		body := truncate(available[0].Description, toastBodyLimit)
		if err := d.bounded(ctx, func() error { return d.sender.SendVisual(title, body) }); err != nil {
			slog.ErrorContext(ctx, "desktop notification failed", "err", err)
		} else {
			slog.InfoContext(ctx, "desktop notification sent")
		}
	}

	if d.cfg.SoundEnabled {
		if err := d.bounded(ctx, func() error { return d.sender.SendSound(d.cfg.SoundFile) }); err != nil {
			slog.ErrorContext(ctx, "sound alert failed", "err", err)
		} else {
			slog.InfoContext(ctx, "sound alert played")
		}
	}

	if d.cfg.EmailEnabled {
		if err := d.bounded(ctx, func() error { return d.sendEmail(title, available, sourceURL) }); err != nil {
			slog.ErrorContext(ctx, "email notification failed", "err", err)
		} else {
			slog.InfoContext(ctx, "email notification sent")
		}
	}
}

func (d *Dispatcher) sendEmail(title string, available []exam.Session, sourceURL string) error {
	htmlBody, err := BuildEmailBody(available, sourceURL)
	if err != nil {
		return fmt.Errorf("build email body: %w", err)
	}
	return d.mailer.Send(title, PlainSummary(available), htmlBody)
}

// bounded runs fn but gives up after channelTimeout (or when ctx is
// cancelled). The goroutine is left to finish on its own; neither OS
// notification commands nor an in-flight SMTP exchange can be
// interrupted midway.
func (d *Dispatcher) bounded(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, channelTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
