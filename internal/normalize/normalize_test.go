package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle_Blank(t *testing.T) {
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "", Title("   "))
	assert.Equal(t, "", Title("\t\n"))
}

func TestTitle_TruncatesAtMarker(t *testing.T) {
	got := Title("Lidl Warszawa DATA TRANSAKCJI: 2024-05-02")
	assert.Equal(t, "LIDL WARSZAWA", got)

	// The cut also applies when spacing or casing around the marker is
	// irregular in the raw export.
	assert.Equal(t, "LIDL", Title("Lidl data  transakcji: 2024-05-02"))
}

func TestTitle_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "ZABKA Z5642 K1 POZNAN", Title("Żabka Z5642 K1 Poznań"))
	assert.Equal(t, "GESLA JAZN", Title("gęślą jaźń"))
}

func TestTitle_UndecomposableRunesBecomeSpaces(t *testing.T) {
	// ł has no combining-mark decomposition, so it falls out with the
	// rest of the non-ASCII residue instead of folding to l.
	assert.Equal(t, "OP ATA", Title("OPŁATA"))
}

func TestTitle_SlashesBecomeSpaces(t *testing.T) {
	assert.Equal(t, "PRZELEW SRODKOW", Title("PRZELEW/ŚRODKÓW"))
	assert.Equal(t, "A B C", Title(`a\b/c`))
}

func TestTitle_StripsPunctuationAndCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "WWW CINEMA CITY PL", Title("www.cinema-city.pl"))
	assert.Equal(t, "H M POZNAN", Title("  H&M,   Poznań  "))
}

func TestTitle_Uppercases(t *testing.T) {
	assert.Equal(t, "LIDL WARSZAWA", Title("lidl warszawa"))
}

func TestTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Żabka Z5642 K1 Poznań",
		"Lidl Warszawa DATA TRANSAKCJI: 2024-05-02",
		"www.cinema-city.pl",
		"PRZELEW ŚRODKÓW / BLIK",
		"DATA  TRANSAKCJI",
		"data transakcji: 2024-05-02",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := Title(in)
		assert.Equal(t, once, Title(once), "input %q", in)
	}
}
