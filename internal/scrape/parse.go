// Package scrape fetches the EAS exam page and extracts exam.Session
// records from its fixed table markup.
//
// The page structure is outside our control. Extraction therefore
// degrades per field: a missing sub-element yields that field's default
// instead of failing the row, and a malformed row never fails the page.
package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gbertoni/easwatch/internal/exam"
)

// Selectors for the row container and its sub-fields. These mirror the
// class names on the EAS date listing page.
const (
	selRow          = "div.riga_tabella"
	selDescription  = "div.tabelladescrizione"
	selNote         = "div.tabellanote"
	selBuyLink      = "div.tabellaacquista a"
	selPricePublic  = "div.tabellaprezzo.pubblico"
	selPriceStudent = "div.tabellaprezzo.studenti"
)

// ParseSessions extracts all exam sessions from the page markup, in
// document order. It fails only when the input cannot be interpreted as
// HTML at all; incomplete rows come back with field defaults.
func ParseSessions(htmlContent string) ([]exam.Session, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse exam page: %w", err)
	}

	var sessions []exam.Session
	doc.Find(selRow).Each(func(_ int, row *goquery.Selection) {
		s := exam.Session{
			Description:  fieldText(row, selDescription, "N/A"),
			Note:         fieldText(row, selNote, ""),
			PricePublic:  fieldText(row, selPricePublic, ""),
			PriceStudent: fieldText(row, selPriceStudent, ""),
		}
		if link := row.Find(selBuyLink); link.Length() > 0 {
			s.HasBuyLink = true
			// href may legitimately be absent, BuyURL stays empty then
			s.BuyURL = strings.TrimSpace(link.First().AttrOr("href", ""))
		}
		sessions = append(sessions, s)
	})

	return sessions, nil
}

// fieldText returns the trimmed text of the first element matching sel
// inside row, or fallback when no such element exists. Entities are
// already decoded by the HTML parser; TrimSpace also covers the
// non-breaking spaces the page likes to append to notes.
func fieldText(row *goquery.Selection, sel, fallback string) string {
	el := row.Find(sel)
	if el.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(el.First().Text())
}
