// Package aggregate merges the output of all configured statement
// readers into one deduplicated, deterministically ordered view. A
// failing reader is isolated: it contributes nothing, the rest proceed.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/normalize"
	"github.com/saldo-dev/saldo/internal/reader"
)

// Engine runs a fixed reader set and post-processes the merged result.
type Engine struct {
	readers []reader.Reader
	log     zerolog.Logger
}

// New creates an engine over the given readers.
func New(readers []reader.Reader, log zerolog.Logger) *Engine {
	return &Engine{readers: readers, log: log}
}

// Aggregate collects every reader, merges, deduplicates by fingerprint
// and sorts. It always succeeds: one malformed bank export must never
// block visibility of transactions from the other sources, so reader
// failures are logged and skipped.
func (e *Engine) Aggregate() []model.Transaction {
	var merged []model.Transaction
	for _, r := range e.readers {
		txns, err := r.Read()
		if err != nil {
			e.log.Error().Err(err).Str("bank", string(r.Bank())).Msg("reader failed, source skipped")
			continue
		}
		merged = append(merged, txns...)
	}

	deduped := Dedup(merged)
	Sort(deduped)
	return deduped
}

// Fingerprint derives the dedup key for a transaction: date as epoch
// seconds, amount with trailing zeros stripped, normalized title.
// Statements exported from different sources may overlap in date range;
// records agreeing on all three are considered the same transaction.
// Account, bank and currency are deliberately ignored.
func Fingerprint(t model.Transaction) string {
	return fmt.Sprintf("%d|%s|%s", t.Date.Unix(), t.Amount.String(), normalize.Title(t.Title))
}

// Dedup keeps the first transaction observed for each distinct
// fingerprint, preserving input order.
func Dedup(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txns))
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		fp := Fingerprint(t)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Sort orders transactions by date descending (zero dates last), then
// amount descending, then normalized title ascending (empty last). The
// ordering is total, so identical input always yields identical output.
func Sort(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return less(txns[i], txns[j])
	})
}

func less(a, b model.Transaction) bool {
	switch {
	case a.Date.IsZero() && !b.Date.IsZero():
		return false
	case !a.Date.IsZero() && b.Date.IsZero():
		return true
	case !a.Date.Equal(b.Date):
		return a.Date.After(b.Date)
	}

	if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
		return cmp > 0
	}

	ta, tb := normalize.Title(a.Title), normalize.Title(b.Title)
	switch {
	case ta == tb:
		return false
	case ta == "":
		return false
	case tb == "":
		return true
	}
	return ta < tb
}
