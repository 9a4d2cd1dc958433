package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gbertoni/easwatch/internal/config"
	"github.com/gbertoni/easwatch/internal/scrape"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"dry-run"},
	Short:   "Fetch the page once and list every session, sending nothing",
	Long: `Perform a single fetch of the exam page and print every parsed session
with its availability status. No notification is sent and no dedup state
is recorded. Unlike watch, a fetch or parse failure is fatal here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		fetcher := scrape.NewFetcher(cfg.Monitor.URL, time.Duration(cfg.Monitor.Timeout)*time.Second)

		fmt.Printf("Checking %s\n", cfg.Monitor.URL)
		var sp *spinner.Spinner
		if term.IsTerminal(int(os.Stdout.Fd())) {
			sp = spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			sp.Suffix = " fetching..."
			sp.Start()
		}
		body, err := fetcher.Fetch(cmd.Context())
		if sp != nil {
			sp.Stop()
		}
		if err != nil {
			return err
		}

		sessions, err := scrape.ParseSessions(body)
		if err != nil {
			return err
		}

		fmt.Printf("\nTotal sessions: %d\n", len(sessions))
		fmt.Println("--------------------------------------------------")

		available := 0
		for i, s := range sessions {
			status := "Esaurito "
			if s.IsAvailable() {
				status = "AVAILABLE"
				available++
			}
			extra := ""
			if s.HasLastSpots() {
				extra = fmt.Sprintf("  ! %s", s.Note)
			}
			if s.BuyURL != "" {
				extra += fmt.Sprintf("  -> %s", s.BuyURL)
			}
			fmt.Printf("%4d. [%s] %s | %s%s\n", i+1, status, s.Description, s.PriceStudent, extra)
		}

		fmt.Println("--------------------------------------------------")
		fmt.Printf("Available: %d | Esaurito: %d\n", available, len(sessions)-available)
		return nil
	},
}
