// Package exam holds the domain model for EAS exam sessions: one value
// per row of the availability table, plus the predicates that decide
// whether a session can still be booked.
package exam

import (
	"fmt"
	"regexp"
	"strings"
)

// soldOutMarker is the text the EAS page uses for fully booked sessions.
const soldOutMarker = "esaurito"

// lastSpotsRe matches the "ultimi N posti" wording (and its singular
// variants "ultimo 1 posto") the page uses for nearly-full sessions.
var lastSpotsRe = regexp.MustCompile(`(?i)ultim\w*\s+\d+\s+post`)

// Session is a single exam slot row as scraped from the page.
// A Session is never mutated after construction.
type Session struct {
	// Description identifies the slot (date, time, location) and doubles
	// as the dedup key. The page does not expose a stable id.
	Description string

	// Note is the status annotation: "Esaurito", "ultimi N posti" or empty.
	Note string

	// HasBuyLink reports whether a purchase action is exposed for the row.
	HasBuyLink bool

	// BuyURL is the purchase link target. Empty when absent.
	BuyURL string

	// Prices are display strings, kept verbatim. No arithmetic happens here.
	PriceStudent string
	PricePublic  string
}

// IsSoldOut reports whether the note carries the sold-out marker,
// case-insensitively.
func (s Session) IsSoldOut() bool {
	return strings.Contains(strings.ToLower(s.Note), soldOutMarker)
}

// IsAvailable reports whether the session can be booked. A purchase link
// overrides a sold-out note: the site would not offer the action otherwise.
func (s Session) IsAvailable() bool {
	return !s.IsSoldOut() || s.HasBuyLink
}

// HasLastSpots reports whether the note matches the "ultimi N posti" pattern.
func (s Session) HasLastSpots() bool {
	return lastSpotsRe.MatchString(s.Note)
}

// Key returns the dedup key for this session. Two rows with the same
// description are indistinguishable and dedup together.
func (s Session) Key() string {
	return s.Description
}

// String renders the session for logs and the check listing.
func (s Session) String() string {
	status := "ESAURITO"
	if s.IsAvailable() {
		status = "AVAILABLE"
	}
	if s.Note != "" && !s.IsSoldOut() {
		return fmt.Sprintf("[%s] %s [%s]", status, s.Description, s.Note)
	}
	return fmt.Sprintf("[%s] %s", status, s.Description)
}

// FindAvailable returns the sessions that are not sold out, preserving
// their document order.
func FindAvailable(sessions []Session) []Session {
	var available []Session
	for _, s := range sessions {
		if s.IsAvailable() {
			available = append(available, s)
		}
	}
	return available
}
