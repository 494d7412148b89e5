package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionSeverityLevel(t *testing.T) {
	testCases := map[InteractionSeverity]WarningLevel{
		SeverityContraindicated: WarningHigh,
		SeverityMajor:           WarningHigh,
		SeverityModerate:        WarningMedium,
		SeverityMinor:           WarningLow,
	}
	for severity, want := range testCases {
		assert.Equal(t, want, severity.Level(), string(severity))
	}
}

func TestDiseasePredictionRequestRejectsNull(t *testing.T) {
	for _, body := range []string{`{"region":null}`, `{"days_ahead": null}`} {
		var req DiseasePredictionRequest
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorIs(t, err, ErrNullField, body)
	}
}

func TestDiseasePredictionRequestDecodes(t *testing.T) {
	var req DiseasePredictionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"region":"","days_ahead":7}`), &req))
	require.NotNil(t, req.Region)
	assert.Equal(t, "", *req.Region)
	require.NotNil(t, req.DaysAhead)
	assert.Equal(t, 7, *req.DaysAhead)

	// 省略はnilのまま（デフォルト値はハンドラーで補完）
	req = DiseasePredictionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.Region)
	assert.Nil(t, req.DaysAhead)
}

func TestInventoryForecastRequestNulls(t *testing.T) {
	var req InventoryForecastRequest
	require.NoError(t, json.Unmarshal([]byte(`{"medicine_id":null,"days_ahead":14}`), &req))
	assert.Nil(t, req.MedicineID)
	assert.Equal(t, 14, *req.DaysAhead)

	err := json.Unmarshal([]byte(`{"days_ahead":null}`), &req)
	assert.ErrorIs(t, err, ErrNullField)
}
