package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbertoni/easwatch/internal/config"
	"github.com/gbertoni/easwatch/internal/exam"
	"github.com/gbertoni/easwatch/internal/logging"
	"github.com/gbertoni/easwatch/internal/monitor"
	"github.com/gbertoni/easwatch/internal/notify"
	"github.com/gbertoni/easwatch/internal/scrape"
)

// mockPage is sample markup mirroring the EAS table structure: one row
// with last spots and a purchase link, one sold out (note the trailing
// non-breaking space the real page emits).
const mockPage = `
<div class="riga_tabella Marzo" data-citta="Sessione Remota" data-mese="3">
    <div class="tabelladescrizione">
        <strong>Lunedì 10 ore 10:00</strong>
        - Sessione Remota - <b><font color="#28874A">Versione: Remoto da Casa</font></b>
    </div>
    <div class="tabellaprezzo pubblico">€ 145,00</div>
    <div class="tabellaprezzo studenti">€ 130,00</div>
    <div class="tabellanote">ultimi 2 posti</div>
    <div class="tabellaacquista">
        <a href="index.php?f=carrello.php&id=999">Acquista</a>
    </div>
</div>
<div class="riga_tabella Marzo" data-citta="Sessione Remota" data-mese="3">
    <div class="tabelladescrizione">
        <strong>Lunedì 10 ore 15:00</strong>
        - Sessione Remota
    </div>
    <div class="tabellaprezzo pubblico">€ 145,00</div>
    <div class="tabellaprezzo studenti">€ 130,00</div>
    <div class="tabellanote">Esaurito&nbsp;</div>
    <div class="tabellaacquista"></div>
</div>
`

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Exercise the notification channels and the parser",
}

var testEmailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send a test email built from a synthetic available session",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Email.SMTPHost == "" || cfg.Email.Recipient == "" {
			return fmt.Errorf("email is not configured: set email.smtp_host and email.recipient")
		}

		mock := exam.Session{
			Description:  "[TEST] Venerdì 14 ore 10:00 - Sessione Remota",
			Note:         "ultimi 3 posti",
			HasBuyLink:   true,
			BuyURL:       "https://eas-milano.org/index.php?f=carrello.php&id=999",
			PriceStudent: "€ 130,00",
			PricePublic:  "€ 145,00",
		}

		htmlBody, err := notify.BuildEmailBody([]exam.Session{mock}, cfg.Monitor.URL)
		if err != nil {
			return err
		}

		mailer := notify.NewSMTPMailer(cfg.Email)
		subject := "[TEST] easwatch - notifica di prova"
		if err := mailer.Send(subject, notify.PlainSummary([]exam.Session{mock}), htmlBody); err != nil {
			return fmt.Errorf("test email failed: %w", err)
		}

		fmt.Printf("Test email sent to %s\n", cfg.Email.Recipient)
		return nil
	},
}

var testMockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run the parser and classifier against embedded sample markup",
	Long: `Parse embedded sample markup containing one available session and one
sold-out session, verify detection, and fire the desktop and sound
channels if enabled. The email channel is never used here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		sessions, err := scrape.ParseSessions(mockPage)
		if err != nil {
			return err
		}

		available := exam.FindAvailable(sessions)
		fmt.Printf("Mock test: %d sessions parsed, %d available\n", len(sessions), len(available))
		for _, s := range sessions {
			fmt.Printf("  -> %s\n", s)
		}

		if len(available) == 0 {
			return fmt.Errorf("detection failed: no available sessions found in mock data")
		}

		fmt.Println("Detection works, sending desktop + sound notification...")
		channels := cfg.Notifications
		channels.EmailEnabled = false
		dispatcher := notify.NewDispatcher(channels, cfg.Email)
		dispatcher.Dispatch(cmd.Context(), "[TEST] "+monitor.Title(len(available)), available, config.DefaultURL)
		return nil
	},
}

func init() {
	testCmd.AddCommand(testEmailCmd)
	testCmd.AddCommand(testMockCmd)
}
