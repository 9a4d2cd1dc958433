package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePage mirrors the structure of the real date listing: one nearly
// full session with a purchase link, one sold out with a trailing
// non-breaking space in the note, one with no note at all.
const samplePage = `<html><body>
<div class="riga_tabella Marzo" data-citta="Sessione Remota" data-mese="3">
    <div class="tabelladescrizione">
        <strong>Lunedì 10 ore 10:00</strong>
        - Sessione Remota
    </div>
    <div class="tabellaprezzo pubblico">€ 145,00</div>
    <div class="tabellaprezzo studenti">€ 130,00</div>
    <div class="tabellanote">ultimi 2 posti</div>
    <div class="tabellaacquista">
        <a href="index.php?f=carrello.php&amp;id=999">Acquista</a>
    </div>
</div>
<div class="riga_tabella Marzo" data-citta="Sessione Remota" data-mese="3">
    <div class="tabelladescrizione"><strong>Lunedì 10 ore 15:00</strong> - Sessione Remota</div>
    <div class="tabellaprezzo pubblico">€ 145,00</div>
    <div class="tabellaprezzo studenti">€ 130,00</div>
    <div class="tabellanote">Esaurito&nbsp;</div>
    <div class="tabellaacquista"></div>
</div>
<div class="riga_tabella Aprile" data-citta="Sessione Remota" data-mese="4">
    <div class="tabelladescrizione"><strong>Martedì 11 ore 9:00</strong></div>
    <div class="tabellaprezzo pubblico">€ 145,00</div>
    <div class="tabellaprezzo studenti">€ 130,00</div>
</div>
</body></html>`

func TestParseSessionsOrderAndCount(t *testing.T) {
	t.Parallel()

	sessions, err := ParseSessions(samplePage)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	assert.Contains(t, sessions[0].Description, "Lunedì 10 ore 10:00")
	assert.Contains(t, sessions[1].Description, "Lunedì 10 ore 15:00")
	assert.Contains(t, sessions[2].Description, "Martedì 11 ore 9:00")
}

func TestParseSessionsFields(t *testing.T) {
	t.Parallel()

	sessions, err := ParseSessions(samplePage)
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	first := sessions[0]
	assert.Equal(t, "ultimi 2 posti", first.Note)
	assert.True(t, first.HasBuyLink)
	assert.Equal(t, "index.php?f=carrello.php&id=999", first.BuyURL, "entities in href must be decoded")
	assert.Equal(t, "€ 130,00", first.PriceStudent)
	assert.Equal(t, "€ 145,00", first.PricePublic)
	assert.True(t, first.IsAvailable())
	assert.True(t, first.HasLastSpots())
}

func TestParseSessionsSoldOutWithNbsp(t *testing.T) {
	t.Parallel()

	sessions, err := ParseSessions(samplePage)
	require.NoError(t, err)

	// The trailing &nbsp; must not survive trimming nor break detection.
	second := sessions[1]
	assert.Equal(t, "Esaurito", second.Note)
	assert.True(t, second.IsSoldOut())
	assert.False(t, second.HasBuyLink)
	assert.Empty(t, second.BuyURL)
	assert.False(t, second.IsAvailable())
}

func TestParseSessionsMissingFieldsDefault(t *testing.T) {
	t.Parallel()

	sessions, err := ParseSessions(samplePage)
	require.NoError(t, err)

	// Third row has no note and no purchase container.
	third := sessions[2]
	assert.Equal(t, "", third.Note)
	assert.False(t, third.IsSoldOut())
	assert.False(t, third.HasBuyLink)
	assert.True(t, third.IsAvailable())
}

func TestParseSessionsMissingDescription(t *testing.T) {
	t.Parallel()

	page := `<div class="riga_tabella">
		<div class="tabellanote">Esaurito</div>
	</div>`

	sessions, err := ParseSessions(page)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "N/A", sessions[0].Description)
}

func TestParseSessionsBuyLinkWithoutHref(t *testing.T) {
	t.Parallel()

	page := `<div class="riga_tabella">
		<div class="tabelladescrizione">Slot</div>
		<div class="tabellaacquista"><a>Acquista</a></div>
	</div>`

	sessions, err := ParseSessions(page)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].HasBuyLink)
	assert.Empty(t, sessions[0].BuyURL)
}

func TestParseSessionsSoldOutButBuyLinkPresent(t *testing.T) {
	t.Parallel()

	page := `<div class="riga_tabella">
		<div class="tabelladescrizione">Slot</div>
		<div class="tabellanote">Esaurito&nbsp;</div>
		<div class="tabellaacquista"><a href="/buy">Acquista</a></div>
	</div>`

	sessions, err := ParseSessions(page)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.True(t, s.IsSoldOut())
	assert.True(t, s.IsAvailable(), "purchase link overrides the sold-out note")
}

func TestParseSessionsEmptyPage(t *testing.T) {
	t.Parallel()

	sessions, err := ParseSessions("<html><body><p>manutenzione</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestParseSessionsManyRowsPreserveOrder(t *testing.T) {
	t.Parallel()

	page := ""
	for _, d := range []string{"uno", "due", "tre", "quattro", "cinque"} {
		page += `<div class="riga_tabella"><div class="tabelladescrizione">` + d + `</div></div>`
	}

	sessions, err := ParseSessions(page)
	require.NoError(t, err)
	require.Len(t, sessions, 5)
	for i, d := range []string{"uno", "due", "tre", "quattro", "cinque"} {
		assert.Equal(t, d, sessions[i].Description)
	}
}
