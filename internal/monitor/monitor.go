// Package monitor drives the fetch-parse-classify-notify cycle and owns
// the only mutable core state: the set of session keys already surfaced
// to the user.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gbertoni/easwatch/internal/exam"
	"github.com/gbertoni/easwatch/internal/scrape"
)

// Fetcher retrieves the raw exam page. *scrape.Fetcher satisfies this;
// tests substitute a stub.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Dispatcher receives each batch of newly available sessions.
type Dispatcher interface {
	Dispatch(ctx context.Context, title string, available []exam.Session, sourceURL string)
}

// Monitor polls the exam page until its context is cancelled. Cycles run
// strictly sequentially; there is no concurrent state.
type Monitor struct {
	fetcher    Fetcher
	dispatcher Dispatcher
	url        string
	interval   time.Duration

	// Idle, when set, replaces the plain sleep between cycles. The CLI
	// uses it to show a countdown spinner on interactive terminals. It
	// must return once d elapses or ctx is cancelled.
	Idle func(ctx context.Context, d time.Duration)

	// notified holds the keys already surfaced this run. It only grows:
	// a session never re-notifies, even if its note text changes.
	notified map[string]struct{}
	checks   int
}

// New creates a monitor polling url through fetcher every interval.
func New(fetcher Fetcher, dispatcher Dispatcher, url string, interval time.Duration) *Monitor {
	return &Monitor{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		url:        url,
		interval:   interval,
		notified:   make(map[string]struct{}),
	}
}

// Run loops until ctx is cancelled, then returns nil after a final log
// line. No cycle failure terminates the loop.
func (m *Monitor) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "EAS exam availability monitor started",
		"url", m.url, "interval", m.interval)

	for {
		m.checks++
		m.runCycle(ctx)

		slog.DebugContext(ctx, "next check scheduled", "in", m.interval)
		m.idle(ctx)

		if ctx.Err() != nil {
			slog.InfoContext(ctx, "monitor stopped by user", "checks", m.checks)
			return nil
		}
	}
}

// runCycle performs one fetch-parse-classify-notify pass. Every failure
// is contained here: network errors and parse errors skip to the next
// cycle, and anything unexpected is recovered so the loop survives.
func (m *Monitor) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "unexpected error during check",
				"panic", r, "stack", string(debug.Stack()))
		}
	}()

	slog.InfoContext(ctx, "checking exam page", "check", m.checks)

	body, err := m.fetcher.Fetch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "network error, will retry next cycle", "err", err)
		return
	}

	sessions, err := scrape.ParseSessions(body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse exam page", "err", err)
		return
	}
	slog.InfoContext(ctx, "parsed sessions", "count", len(sessions))

	available := exam.FindAvailable(sessions)
	fresh := MarkNew(m.notified, available)
	if len(fresh) == 0 {
		slog.InfoContext(ctx, "no new available slots",
			"sold_out", len(sessions)-len(available), "total", len(sessions))
		return
	}

	slog.InfoContext(ctx, "new available sessions found", "count", len(fresh))
	for _, s := range fresh {
		slog.InfoContext(ctx, "available", "session", s.String())
	}

	m.dispatcher.Dispatch(ctx, Title(len(fresh)), fresh, m.url)
}

// MarkNew returns the available sessions whose key is not yet in seen,
// adding their keys to seen in document order. Keys are recorded before
// the caller dispatches anything, so a failed notification is not
// retried on the next cycle.
func MarkNew(seen map[string]struct{}, available []exam.Session) []exam.Session {
	var fresh []exam.Session
	for _, s := range available {
		if _, ok := seen[s.Key()]; ok {
			continue
		}
		seen[s.Key()] = struct{}{}
		fresh = append(fresh, s)
	}
	return fresh
}

// Title formats the notification title for a batch of n new sessions.
func Title(n int) string {
	return fmt.Sprintf("EAS TOEIC: %d posto/i disponibile/i!", n)
}

// idle waits out the poll interval, or less if ctx is cancelled.
func (m *Monitor) idle(ctx context.Context) {
	if m.Idle != nil {
		m.Idle(ctx, m.interval)
		return
	}
	t := time.NewTimer(m.interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

var _ Fetcher = (*scrape.Fetcher)(nil)
