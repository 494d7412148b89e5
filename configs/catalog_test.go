package config

import (
	"os"
	"path/filepath"
	"testing"

	"medicore-ai/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Len(t, c.Diseases, 12)
	assert.Len(t, c.Medicines, 8)
	assert.Len(t, c.RestockRecommendations, 5)
	assert.NotEmpty(t, c.DrugInteractions)

	// 順序はカタログ定義順を維持
	assert.Equal(t, "Dengue Fever", c.Diseases[0].Name)
	assert.Equal(t, "Acute Bronchitis", c.Diseases[11].Name)
	assert.Equal(t, models.SeasonAll, c.Diseases[8].Season)
	assert.Equal(t, "Paracetamol 500mg", c.Medicines[0].Name)
	assert.Equal(t, 800, c.Medicines[1].CurrentStock)

	assert.Equal(t, 2.2, c.SeasonalCurves[models.SeasonMonsoon][8])
	assert.Empty(t, c.SeasonalCurves[models.SeasonAll])
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
diseases:
  - { name: "Measles", code: "B05", season: winter, base_rate: 3 }
medicines:
  - { name: "ORS", category: "Rehydration", current_stock: 70, daily_usage: 10 }
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Measles", c.Diseases[0].Name)
	assert.Equal(t, 10, c.Medicines[0].DailyUsage)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseCatalogValidation(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"no diseases", `medicines: []`},
		{"unknown season", `diseases: [{ name: "X", code: "X1", season: spring, base_rate: 1 }]`},
		{"bad month", `
diseases: [{ name: "X", code: "X1", season: winter, base_rate: 1 }]
seasonal_curves: { winter: { 13: 1.5 } }`},
		{"zero usage", `
diseases: [{ name: "X", code: "X1", season: all, base_rate: 1 }]
medicines: [{ name: "M", category: "C", current_stock: 10, daily_usage: 0 }]`},
		{"negative stock", `
diseases: [{ name: "X", code: "X1", season: all, base_rate: 1 }]
medicines: [{ name: "M", category: "C", current_stock: -1, daily_usage: 1 }]`},
		{"unknown urgency", `
diseases: [{ name: "X", code: "X1", season: all, base_rate: 1 }]
restock_recommendations: [{ medicine_name: "M", urgency_level: urgent, confidence: 0.5 }]`},
		{"confidence out of range", `
diseases: [{ name: "X", code: "X1", season: all, base_rate: 1 }]
restock_recommendations: [{ medicine_name: "M", urgency_level: low, confidence: 1.5 }]`},
		{"unknown severity", `
diseases: [{ name: "X", code: "X1", season: all, base_rate: 1 }]
drug_interactions: [{ drug_a: a, drug_b: b, severity: deadly }]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.doc))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseCatalogMalformedYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("diseases: [oops"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}
