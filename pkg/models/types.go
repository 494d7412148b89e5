package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Season 疾患の季節区分
type Season string

const (
	SeasonWinter  Season = "winter"
	SeasonMonsoon Season = "monsoon"
	SeasonSummer  Season = "summer"
	SeasonAll     Season = "all"
)

// Valid reports whether s is one of the known season tags.
func (s Season) Valid() bool {
	switch s {
	case SeasonWinter, SeasonMonsoon, SeasonSummer, SeasonAll:
		return true
	}
	return false
}

// Urgency 在庫補充の緊急度
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Trend 疾患トレンドの分類
type Trend string

const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// DiseaseProfile コールドスタート用の疾患ベースライン
type DiseaseProfile struct {
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code" yaml:"code"` // ICD-10
	Season   Season `json:"season" yaml:"season"`
	BaseRate int    `json:"base_rate" yaml:"base_rate"` // 1日あたりの基準症例数
}

// MedicineProfile 在庫追跡対象の医薬品
type MedicineProfile struct {
	Name         string `json:"name" yaml:"name"`
	Category     string `json:"category" yaml:"category"`
	CurrentStock int    `json:"current_stock" yaml:"current_stock"`
	DailyUsage   int    `json:"daily_usage" yaml:"daily_usage"`
}

// DailyForecastPoint 1日分の症例予測
type DailyForecastPoint struct {
	Date           string `json:"date"`
	PredictedCases int    `json:"predicted_cases"`
}

// DiseaseTrend 疾患ごとの予測結果
type DiseaseTrend struct {
	Disease             string               `json:"disease"`
	Code                string               `json:"code"`
	PredictedCases30d   int                  `json:"predicted_cases_30d"`
	AvgDailyCases       float64              `json:"avg_daily_cases"`
	Trend               Trend                `json:"trend"`
	Confidence          float64              `json:"confidence"`
	ContributingFactors []string             `json:"contributing_factors"`
	DailyForecast       []DailyForecastPoint `json:"daily_forecast"`
}

// ErrNullField is returned when a defaulted field is sent as an explicit null.
var ErrNullField = errors.New("must not be null")

// rejectNull 指定フィールドに明示的なnullがあればエラー
// 省略はデフォルト値、nullは不正な入力として扱う
func rejectNull(data []byte, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, f := range fields {
		if v, ok := raw[f]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("%s %w", f, ErrNullField)
		}
	}
	return nil
}

// DiseasePredictionRequest POST /predict/disease のリクエスト
// 未指定と明示的なゼロ値を区別するためポインタで受ける
type DiseasePredictionRequest struct {
	Region    *string `json:"region"`
	DaysAhead *int    `json:"days_ahead"`
}

// UnmarshalJSON rejects an explicit null for region and days_ahead.
func (r *DiseasePredictionRequest) UnmarshalJSON(data []byte) error {
	if err := rejectNull(data, "region", "days_ahead"); err != nil {
		return err
	}
	type plain DiseasePredictionRequest
	return json.Unmarshal(data, (*plain)(r))
}

// DiseasePredictionResponse POST /predict/disease のレスポンス
type DiseasePredictionResponse struct {
	Region         string         `json:"region"`
	ForecastPeriod string         `json:"forecast_period"`
	GeneratedAt    string         `json:"generated_at"`
	Predictions    []DiseaseTrend `json:"predictions"`
	ModelVersion   string         `json:"model_version"`
	DataSource     string         `json:"data_source"`
}

// InventoryForecast 医薬品ごとの在庫予測
type InventoryForecast struct {
	MedicineName       string  `json:"medicine_name"`
	Category           string  `json:"category"`
	CurrentStock       int     `json:"current_stock"`
	DailyUsageAvg      int     `json:"daily_usage_avg"`
	PredictedDemand30d int     `json:"predicted_demand_30d"`
	DaysRemaining      int     `json:"days_remaining"`
	RecommendedStock   int     `json:"recommended_stock"`
	ReorderNeeded      bool    `json:"reorder_needed"`
	Urgency            Urgency `json:"urgency"`
	Confidence         float64 `json:"confidence"`
}

// InventoryForecastRequest POST /predict/inventory のリクエスト
// medicine_id は null を許可する
type InventoryForecastRequest struct {
	MedicineID *string `json:"medicine_id"`
	DaysAhead  *int    `json:"days_ahead"`
}

// UnmarshalJSON rejects an explicit null for days_ahead.
func (r *InventoryForecastRequest) UnmarshalJSON(data []byte) error {
	if err := rejectNull(data, "days_ahead"); err != nil {
		return err
	}
	type plain InventoryForecastRequest
	return json.Unmarshal(data, (*plain)(r))
}

// InventorySummary 在庫予測の集計
type InventorySummary struct {
	TotalMedicinesTracked int `json:"total_medicines_tracked"`
	CriticalReorders      int `json:"critical_reorders"`
	HighPriorityReorders  int `json:"high_priority_reorders"`
}

// InventoryForecastResponse POST /predict/inventory のレスポンス
type InventoryForecastResponse struct {
	ForecastPeriod string              `json:"forecast_period"`
	GeneratedAt    string              `json:"generated_at"`
	Forecasts      []InventoryForecast `json:"forecasts"`
	Summary        InventorySummary    `json:"summary"`
}

// RestockRecommendation 補充推奨（固定値）
type RestockRecommendation struct {
	MedicineName           string  `json:"medicine_name" yaml:"medicine_name"`
	CurrentStock           int     `json:"current_stock" yaml:"current_stock"`
	PredictedDemand30d     int     `json:"predicted_demand_30d" yaml:"predicted_demand_30d"`
	RecommendedOrderQty    int     `json:"recommended_order_qty" yaml:"recommended_order_qty"`
	UrgencyLevel           Urgency `json:"urgency_level" yaml:"urgency_level"`
	EstimatedDaysRemaining int     `json:"estimated_days_remaining" yaml:"estimated_days_remaining"`
	Confidence             float64 `json:"confidence" yaml:"confidence"`
}

// UrgencyTally 緊急度ごとの件数
type UrgencyTally struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// RestockResponse GET /predict/restock のレスポンス
type RestockResponse struct {
	GeneratedAt     string                  `json:"generated_at"`
	Recommendations []RestockRecommendation `json:"recommendations"`
	Summary         UrgencyTally            `json:"summary"`
}
