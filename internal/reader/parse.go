package reader

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	dateISO  = "2006-01-02"
	dateDots = "02.01.2006"
)

// now is swapped in tests.
var now = time.Now

// today returns the current processing date at start of day, UTC.
func today() time.Time {
	y, m, d := now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// clean folds non-breaking spaces to ordinary spaces and trims.
func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

// unquote strips the single quotes some exports wrap account and
// reference numbers in to stop spreadsheets mangling them.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "'")
	return strings.TrimSuffix(s, "'")
}

func firstNonBlank(a, b string) string {
	if !isBlank(a) {
		return a
	}
	if !isBlank(b) {
		return b
	}
	return ""
}

var amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

var amountCleaner = strings.NewReplacer(" ", "", " ", "", "'", "", ",", ".")

// parseAmount converts a locale-formatted amount ("1 234,56", NBSP or
// apostrophe thousands separators) to a decimal. Anything that does not
// end up a signed decimal literal becomes zero with a warning; a bad
// amount must never abort the read.
func parseAmount(raw string, log zerolog.Logger) decimal.Decimal {
	if isBlank(raw) {
		return decimal.Zero
	}

	normalized := amountCleaner.Replace(strings.TrimSpace(raw))
	if !amountPattern.MatchString(normalized) {
		log.Warn().Str("amount", raw).Msg("unparsable amount, using zero")
		return decimal.Zero
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		log.Warn().Str("amount", raw).Err(err).Msg("unparsable amount, using zero")
		return decimal.Zero
	}
	return d
}

// pickDate chooses the booking date, falling back to the secondary
// date, falling back to the current processing date. Accepts ISO
// (yyyy-MM-dd) and day-first dotted (dd.MM.yyyy) formats, trying the
// alternate on parse failure before giving up.
func pickDate(primary, secondary string, log zerolog.Logger) time.Time {
	chosen := strings.TrimSpace(primary)
	if chosen == "" {
		chosen = strings.TrimSpace(secondary)
	}
	if chosen == "" {
		return today()
	}

	if t, ok := parseDate(chosen); ok {
		return t
	}
	log.Warn().Str("date", chosen).Msg("unparsable date, using processing date")
	return today()
}

func parseDate(s string) (time.Time, bool) {
	layouts := []string{dateISO, dateDots}
	if !strings.Contains(s, "-") {
		layouts = []string{dateDots, dateISO}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
