package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"medicore-ai/pkg/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog はcatalog.yamlの構造を定義
// 起動時に一度だけ読み込み、以降は読み取り専用として扱う
type Catalog struct {
	Diseases               []models.DiseaseProfile           `yaml:"diseases"`
	SeasonalCurves         map[models.Season]map[int]float64 `yaml:"seasonal_curves"`
	Medicines              []models.MedicineProfile          `yaml:"medicines"`
	RestockRecommendations []models.RestockRecommendation    `yaml:"restock_recommendations"`
	DrugInteractions       []models.DrugInteraction          `yaml:"drug_interactions"`
}

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// DefaultCatalog は埋め込みのcatalog.yamlを読み込む
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog はpathのYAMLを読み込む。pathが空の場合は埋め込みカタログを使用
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s の読み込みに失敗: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog のパースに失敗: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every entry of the catalog.
func (c *Catalog) Validate() error {
	if len(c.Diseases) == 0 {
		return fmt.Errorf("%w: no diseases", ErrInvalidCatalog)
	}
	for i, d := range c.Diseases {
		if d.Name == "" {
			return fmt.Errorf("%w: disease #%d has no name", ErrInvalidCatalog, i)
		}
		if !d.Season.Valid() {
			return fmt.Errorf("%w: disease %q has unknown season %q", ErrInvalidCatalog, d.Name, d.Season)
		}
		if d.BaseRate < 0 {
			return fmt.Errorf("%w: disease %q has negative base_rate", ErrInvalidCatalog, d.Name)
		}
	}

	for season, curve := range c.SeasonalCurves {
		if !season.Valid() {
			return fmt.Errorf("%w: unknown seasonal curve %q", ErrInvalidCatalog, season)
		}
		for month := range curve {
			if month < 1 || month > 12 {
				return fmt.Errorf("%w: curve %q has month %d", ErrInvalidCatalog, season, month)
			}
		}
	}

	for _, m := range c.Medicines {
		if m.CurrentStock < 0 {
			return fmt.Errorf("%w: medicine %q has negative stock", ErrInvalidCatalog, m.Name)
		}
		if m.DailyUsage < 1 {
			return fmt.Errorf("%w: medicine %q daily_usage must be >= 1", ErrInvalidCatalog, m.Name)
		}
	}

	for _, r := range c.RestockRecommendations {
		if !r.UrgencyLevel.Valid() {
			return fmt.Errorf("%w: recommendation %q has unknown urgency %q", ErrInvalidCatalog, r.MedicineName, r.UrgencyLevel)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			return fmt.Errorf("%w: recommendation %q confidence out of range", ErrInvalidCatalog, r.MedicineName)
		}
	}

	for _, in := range c.DrugInteractions {
		if in.DrugA == "" || in.DrugB == "" {
			return fmt.Errorf("%w: interaction with empty drug name", ErrInvalidCatalog)
		}
		if !in.Severity.Valid() {
			return fmt.Errorf("%w: interaction %s/%s has unknown severity %q", ErrInvalidCatalog, in.DrugA, in.DrugB, in.Severity)
		}
	}
	return nil
}
