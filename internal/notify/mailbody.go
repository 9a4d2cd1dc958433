package notify

import (
	"html/template"
	"strings"
	"time"

	"github.com/gbertoni/easwatch/internal/exam"
)

// mailTemplate renders the availability table for the email channel.
// Badge and purchase button are conditional per row. html/template
// escapes all interpolated page text.
var mailTemplate = template.Must(template.New("mail").Parse(`<html>
<body style="font-family:Arial,sans-serif;">
  <h2 style="color:#28a745;">EAS TOEIC &ndash; Posti Disponibili!</h2>
  <p>Sono stati trovati <strong>{{len .Sessions}}</strong> slot d'esame disponibili:</p>
  <table style="border-collapse:collapse;width:100%;">
    <tr style="background:#f8f9fa;">
      <th style="padding:8px;text-align:left;">Sessione</th>
      <th style="padding:8px;text-align:left;">Prezzo Studenti</th>
      <th style="padding:8px;text-align:left;">Stato</th>
    </tr>
{{- range .Sessions}}
    <tr>
      <td style="padding:8px;border-bottom:1px solid #eee;">{{.Description}}</td>
      <td style="padding:8px;border-bottom:1px solid #eee;">{{.PriceStudent}}</td>
      <td style="padding:8px;border-bottom:1px solid #eee;">
        {{- if .HasLastSpots}}<span style="color:#e67e22;font-weight:bold;">&#9888; {{.Note}}</span> {{end -}}
        {{- if .BuyURL}}<a href="{{.BuyURL}}" style="background:#28a745;color:white;padding:4px 12px;border-radius:4px;text-decoration:none;">Acquista</a>{{end -}}
      </td>
    </tr>
{{- end}}
  </table>
  <p style="margin-top:20px;">
    <a href="{{.SourceURL}}" style="background:#007bff;color:white;padding:10px 20px;border-radius:4px;text-decoration:none;font-size:16px;">Vai alla pagina EAS</a>
  </p>
  <p style="color:#888;font-size:12px;margin-top:30px;">Notifica generata il {{.GeneratedAt}}</p>
</body>
</html>
`))

type mailData struct {
	Sessions    []exam.Session
	SourceURL   string
	GeneratedAt string
}

// BuildEmailBody renders the HTML email listing the available sessions
// with a link back to the monitored page.
func BuildEmailBody(available []exam.Session, sourceURL string) (string, error) {
	var buf strings.Builder
	err := mailTemplate.Execute(&buf, mailData{
		Sessions:    available,
		SourceURL:   sourceURL,
		GeneratedAt: time.Now().Format("02/01/2006 alle 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainSummary renders the plain-text alternative: one display line per
// session.
func PlainSummary(available []exam.Session) string {
	lines := make([]string, len(available))
	for i, s := range available {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
