package reader

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/model"
)

// Column headers as they appear in the PKO SA export.
const (
	pkosaColBooking      = "Data księgowania"
	pkosaColValueDate    = "Data waluty"
	pkosaColCounterparty = "Nadawca / Odbiorca"
	pkosaColTitle        = "Tytułem"
	pkosaColAmount       = "Kwota operacji"
	pkosaColCurrency     = "Waluta"
	pkosaColReference    = "Numer referencyjny"
	pkosaColOpType       = "Typ operacji"
	pkosaColSrcAccount   = "Rachunek źródłowy"
	pkosaColDstAccount   = "Rachunek docelowy"
)

// PkoSA reads Bank Pekao (PKO SA) CSV statement exports: Windows-1250,
// semicolon delimited, header on the first line but trailed by stray
// semicolons and a BOM.
type PkoSA struct {
	src Source
	cls *classify.Classifier
	log zerolog.Logger
}

// NewPkoSA creates a PKO SA statement reader.
func NewPkoSA(src Source, cls *classify.Classifier, log zerolog.Logger) *PkoSA {
	return &PkoSA{src: src, cls: cls, log: log.With().Str("bank", string(model.BankPkoSA)).Logger()}
}

// Bank identifies the dialect.
func (r *PkoSA) Bank() model.Bank { return model.BankPkoSA }

// Read parses the statement into transactions.
func (r *PkoSA) Read() ([]model.Transaction, error) {
	rc, err := r.src()
	if err != nil {
		return nil, fmt.Errorf("opening pkosa statement: %w", err)
	}
	defer rc.Close()

	lines, err := decodeLines(rc)
	if err != nil {
		return nil, fmt.Errorf("reading pkosa statement: %w", err)
	}

	headerIdx := findHeader(lines, pkosaColBooking, pkosaColValueDate)
	if headerIdx < 0 {
		r.log.Warn().Msg("statement header not found, skipping")
		return nil, nil
	}

	// The header line carries a run of trailing semicolons that would
	// otherwise turn into nameless columns.
	lines[headerIdx] = strings.TrimRight(stripBOM(lines[headerIdx]), ";")

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing pkosa CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := indexColumns(records[0])
	var txns []model.Transaction
	for _, rec := range records[1:] {
		booking := cols.get(rec, pkosaColBooking)
		valueDate := cols.get(rec, pkosaColValueDate)
		counterparty := cols.get(rec, pkosaColCounterparty)
		titleField := cols.get(rec, pkosaColTitle)
		amountRaw := cols.get(rec, pkosaColAmount)
		currency := cols.get(rec, pkosaColCurrency)
		reference := unquote(cols.get(rec, pkosaColReference))
		opType := cols.get(rec, pkosaColOpType)
		srcAccount := unquote(cols.get(rec, pkosaColSrcAccount))
		dstAccount := unquote(cols.get(rec, pkosaColDstAccount))

		if isBlank(counterparty) && isBlank(titleField) && isBlank(amountRaw) {
			continue
		}

		title := firstNonBlank(counterparty, titleField)
		amount := parseAmount(amountRaw, r.log)
		txns = append(txns, model.Transaction{
			Title:       clean(title),
			Amount:      amount,
			Type:        model.TypeFor(amount),
			Category:    r.cls.Classify(title),
			Account:     firstNonBlank(srcAccount, dstAccount),
			Date:        pickDate(booking, valueDate, r.log),
			Description: pkosaDescription(titleField, reference, opType, currency),
			Bank:        model.BankPkoSA,
		})
	}
	return txns, nil
}

// pkosaDescription joins the title field, the reference number and the
// operation type with its currency.
func pkosaDescription(titleField, reference, opType, currency string) string {
	var parts []string
	if !isBlank(titleField) {
		parts = append(parts, "Tytułem: "+titleField)
	}
	if !isBlank(reference) {
		parts = append(parts, "Ref: "+reference)
	}
	if !isBlank(opType) {
		if isBlank(currency) {
			parts = append(parts, opType)
		} else {
			parts = append(parts, opType+" "+currency)
		}
	}
	return strings.Join(parts, " | ")
}
