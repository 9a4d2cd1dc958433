package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gbertoni/easwatch/internal/config"
	"github.com/gbertoni/easwatch/internal/logging"
	"github.com/gbertoni/easwatch/internal/monitor"
	"github.com/gbertoni/easwatch/internal/notify"
	"github.com/gbertoni/easwatch/internal/scrape"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"monitor"},
	Short:   "Continuously monitor the exam page and notify on new slots",
	Long: `Poll the configured exam page at a fixed interval, detect sessions that
become available, and notify over the enabled channels. Each session is
notified at most once per run. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func runWatch(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(cfg.Monitor.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := scrape.NewFetcher(cfg.Monitor.URL, time.Duration(cfg.Monitor.Timeout)*time.Second)
	dispatcher := notify.NewDispatcher(cfg.Notifications, cfg.Email)
	mon := monitor.New(fetcher, dispatcher, cfg.Monitor.URL,
		time.Duration(cfg.Monitor.PollInterval)*time.Second)

	// Countdown spinner between checks, but only on a real terminal so
	// redirected output stays a clean log stream.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		mon.Idle = spinnerIdle
	}

	return mon.Run(ctx)
}

// spinnerIdle waits out the poll interval behind a spinner.
func spinnerIdle(ctx context.Context, d time.Duration) {
	sp := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	sp.Suffix = fmt.Sprintf(" next check in %s", d)
	sp.Start()
	defer sp.Stop()

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
