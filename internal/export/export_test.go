package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/model"
)

func sample() []model.Transaction {
	amt := decimal.RequireFromString("-45.3")
	return []model.Transaction{
		{
			Title:       "LIDL WARSZAWA",
			Amount:      amt,
			Type:        model.TypeExpense,
			Category:    model.CategoryGroceries,
			Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Description: "ZAKUP PRZY UŻYCIU KARTY",
			Bank:        model.BankMBank,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sample()))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2024-05-01,MBANK,LIDL WARSZAWA,-45.30,EXPENSE,GROCERIES,,ZAKUP PRZY UŻYCIU KARTY", lines[1])
}

func TestWriteCSV_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, Header+"\n", sb.String())
}

func TestWriteJSON(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, sample()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "LIDL WARSZAWA", decoded[0]["title"])
	assert.Equal(t, "EXPENSE", decoded[0]["type"])
	assert.Equal(t, "GROCERIES", decoded[0]["category"])
	assert.Equal(t, "MBANK", decoded[0]["bank"])
	assert.Equal(t, "-45.3", decoded[0]["amount"])
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, nil))
	assert.Equal(t, "[]", strings.TrimSpace(sb.String()))
}
