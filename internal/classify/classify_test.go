package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldo-dev/saldo/internal/model"
)

func TestClassify_Blank(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryUnknown, c.Classify(""))
	assert.Equal(t, model.CategoryUnknown, c.Classify("   "))
}

func TestClassify_NoMatch(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryUnknown, c.Classify("CAŁKIEM NIEZNANY SKLEP"))
}

func TestClassify_Groceries(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryGroceries, c.Classify("LIDL WARSZAWA"))
	assert.Equal(t, model.CategoryGroceries, c.Classify("Biedronka 123 Poznań"))
}

func TestClassify_DiacriticsFolded(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryZabka, c.Classify("Żabka Z5642 K1"))
}

func TestClassify_MarkerIgnored(t *testing.T) {
	c := Default()
	got := c.Classify("Lidl Warszawa DATA TRANSAKCJI: 2024-05-02")
	assert.Equal(t, model.CategoryGroceries, got)
}

func TestClassify_SpecificRuleBeatsCatchAll(t *testing.T) {
	c := Default()
	// Contains both a restaurant pattern and a trailing PL that the
	// online-services catch-all would match.
	got := c.Classify("PIZZERIA ROMA www.pizzeriaroma.pl")
	assert.Equal(t, model.CategoryRestaurant, got)
}

func TestClassify_OnlineCatchAll(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryOnline, c.Classify("www.sklepik.pl"))
}

func TestClassify_Transfer(t *testing.T) {
	c := Default()
	assert.Equal(t, model.CategoryTransfer, c.Classify("PRZELEW ŚRODKÓW"))
	assert.Equal(t, model.CategoryTransfer, c.Classify("BLIK na telefon"))
}

func TestLoad_OrderIsSignificant(t *testing.T) {
	doc := `
rules:
  - pattern: 'LIDL'
    category: FIRST
  - pattern: 'LIDL'
    category: SECOND
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, model.Category("FIRST"), c.Classify("LIDL WARSZAWA"))
}

func TestLoad_EmptyPattern(t *testing.T) {
	doc := `
rules:
  - pattern: ''
    category: GROCERIES
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty pattern")
}

func TestLoad_EmptyCategory(t *testing.T) {
	doc := `
rules:
  - pattern: 'LIDL'
    category: ''
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty category")
}

func TestLoad_BadPattern(t *testing.T) {
	doc := `
rules:
  - pattern: '[unclosed'
    category: GROCERIES
`
	_, err := Load(strings.NewReader(doc))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "compiling pattern")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(strings.NewReader("rules: [whoops"))
	assert.Error(t, err)
}

func TestDefault_RulesLoaded(t *testing.T) {
	assert.Greater(t, Default().Len(), 50)
}
