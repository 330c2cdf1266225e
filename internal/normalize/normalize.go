// Package normalize canonicalizes statement titles. The classifier and
// the dedup fingerprint both key on the normalized form, so they must
// agree on the identity of "the same title"; everything here is pure.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TransactionDateMarker is appended by mBank inside the title field;
// only the text before it is the actual title.
const TransactionDateMarker = "DATA TRANSAKCJI"

var (
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	whitespace = regexp.MustCompile(`\s+`)

	// NFD-decompose, then drop the combining marks (ASCII-fold).
	asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
)

// Title canonicalizes a raw statement title: strips diacritics, folds
// slashes and punctuation to spaces, collapses whitespace, uppercases
// and truncates at the transaction-date marker. The marker cut happens
// on the canonical form so that odd spacing or casing around the marker
// cannot survive one pass and truncate on the next.
// Idempotent: Title(Title(s)) == Title(s).
func Title(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	t := raw
	if folded, _, err := transform.String(asciiFold, t); err == nil {
		t = folded
	}

	t = strings.ReplaceAll(t, "/", " ")
	t = strings.ReplaceAll(t, "\\", " ")
	t = nonAlnum.ReplaceAllString(t, " ")
	t = whitespace.ReplaceAllString(t, " ")
	t = strings.ToUpper(strings.TrimSpace(t))

	if i := strings.Index(t, TransactionDateMarker); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
