package reader

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/normalize"
)

// Column headers (trimmed) as they appear in the mBank export.
const (
	mbankColBooking      = "#Data księgowania"
	mbankColOperation    = "#Data operacji"
	mbankColDesc         = "#Opis operacji"
	mbankColTitle        = "#Tytuł"
	mbankColCounterparty = "#Nadawca/Odbiorca"
	mbankColAccount      = "#Numer konta"
	mbankColAmount       = "#Kwota"
)

// MBank reads mBank CSV statement exports: Windows-1250, semicolon
// delimited, with free-text preface lines before the header row.
type MBank struct {
	src Source
	cls *classify.Classifier
	log zerolog.Logger
}

// NewMBank creates an mBank statement reader.
func NewMBank(src Source, cls *classify.Classifier, log zerolog.Logger) *MBank {
	return &MBank{src: src, cls: cls, log: log.With().Str("bank", string(model.BankMBank)).Logger()}
}

// Bank identifies the dialect.
func (r *MBank) Bank() model.Bank { return model.BankMBank }

// Read parses the statement into transactions.
func (r *MBank) Read() ([]model.Transaction, error) {
	rc, err := r.src()
	if err != nil {
		return nil, fmt.Errorf("opening mbank statement: %w", err)
	}
	defer rc.Close()

	lines, err := decodeLines(rc)
	if err != nil {
		return nil, fmt.Errorf("reading mbank statement: %w", err)
	}

	headerIdx := findHeader(lines, mbankColOperation, mbankColBooking)
	if headerIdx < 0 {
		r.log.Warn().Msg("statement header not found, skipping")
		return nil, nil
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing mbank CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := indexColumns(records[0])
	var txns []model.Transaction
	for _, rec := range records[1:] {
		booking := cols.get(rec, mbankColBooking)
		operation := cols.get(rec, mbankColOperation)
		opDesc := cols.get(rec, mbankColDesc)
		title := cols.get(rec, mbankColTitle)
		counterparty := cols.get(rec, mbankColCounterparty)
		account := cols.get(rec, mbankColAccount)
		amountRaw := cols.get(rec, mbankColAmount)

		// Stray blank lines are not transactions.
		if isBlank(amountRaw) && isBlank(title) && isBlank(opDesc) {
			continue
		}

		amount := parseAmount(amountRaw, r.log)
		txns = append(txns, model.Transaction{
			Title:       clean(title),
			Amount:      amount,
			Type:        model.TypeFor(amount),
			Category:    r.cls.Classify(title),
			Account:     strings.TrimSpace(account),
			Date:        pickDate(booking, operation, r.log),
			Description: mbankDescription(opDesc, title, counterparty),
			Bank:        model.BankMBank,
		})
	}
	return txns, nil
}

// mbankDescription joins the operation description, the counterparty
// and the transaction-date tail that mBank appends inside the title.
func mbankDescription(opDesc, title, counterparty string) string {
	var parts []string
	if !isBlank(opDesc) {
		parts = append(parts, opDesc)
	}
	if !isBlank(counterparty) {
		parts = append(parts, counterparty)
	}
	if i := strings.Index(title, normalize.TransactionDateMarker); i >= 0 {
		parts = append(parts, title[i:])
	}
	return strings.Join(parts, " | ")
}
