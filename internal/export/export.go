// Package export serializes the aggregated transaction view for the
// caller. The pipeline itself never persists anything; these writers
// are the boundary an API layer or the CLI hand the result to.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/saldo-dev/saldo/internal/model"
)

// Header is the CSV header for the aggregated view.
const Header = "date,bank,title,amount,type,category,account,description"

const (
	numFields   = 8
	dateFormat  = "2006-01-02"
	colDate     = 0
	colBank     = 1
	colTitle    = 2
	colAmount   = 3
	colType     = 4
	colCategory = 5
	colAccount  = 6
	colDesc     = 7
)

// WriteCSV writes transactions as CSV, header included.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	if !t.Date.IsZero() {
		row[colDate] = t.Date.Format(dateFormat)
	}
	row[colBank] = string(t.Bank)
	row[colTitle] = t.Title
	row[colAmount] = t.Amount.StringFixed(2)
	row[colType] = string(t.Type)
	row[colCategory] = string(t.Category)
	row[colAccount] = t.Account
	row[colDesc] = t.Description
	return row
}

// WriteJSON writes transactions as an indented JSON array.
func WriteJSON(w io.Writer, txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txns); err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	return nil
}
