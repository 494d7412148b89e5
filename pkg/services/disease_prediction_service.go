package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"medicore-ai/pkg/models"
)

const (
	// ModelVersion コールドスタートモデルのバージョン
	ModelVersion = "1.0.0-coldstart"
	// DiseaseDataSource 予測の根拠データ
	DiseaseDataSource = "Simulated baseline + seasonal patterns"

	diseaseNoiseLow       = 0.8
	diseaseNoiseHigh      = 1.2
	diseaseConfidenceLow  = 0.70
	diseaseConfidenceHigh = 0.95

	risingThreshold    = 1.3
	decliningThreshold = 0.9

	// dailyDetailDays レスポンスに含める日別明細の日数
	dailyDetailDays = 7
)

// ErrInvalidHorizon is returned when the forecast horizon is below one day.
var ErrInvalidHorizon = errors.New("forecast horizon must be at least 1 day")

// DiseasePredictionService 疾患トレンド予測サービス
type DiseasePredictionService struct {
	diseases []models.DiseaseProfile
	curves   SeasonalCurves
	rng      RandomSource
	now      Clock
}

// NewDiseasePredictionService 新しい疾患予測サービスを作成
func NewDiseasePredictionService(diseases []models.DiseaseProfile, curves SeasonalCurves, rng RandomSource, now Clock) *DiseasePredictionService {
	if now == nil {
		now = time.Now
	}
	return &DiseasePredictionService{
		diseases: diseases,
		curves:   curves,
		rng:      rng,
		now:      now,
	}
}

// Predict 地域と予測日数から疾患トレンドを予測
func (s *DiseasePredictionService) Predict(region string, horizonDays int) (*models.DiseasePredictionResponse, error) {
	now := s.now()
	predictions, err := ProjectDiseaseTrends(s.diseases, s.curves, region, horizonDays, now, s.rng)
	if err != nil {
		return nil, fmt.Errorf("疾患予測の計算に失敗: %w", err)
	}

	return &models.DiseasePredictionResponse{
		Region:         region,
		ForecastPeriod: fmt.Sprintf("%d days", horizonDays),
		GeneratedAt:    now.Format(time.RFC3339),
		Predictions:    predictions,
		ModelVersion:   ModelVersion,
		DataSource:     DiseaseDataSource,
	}, nil
}

// ProjectDiseaseTrends 疾患ごとに日別の症例数を予測し、30日症例数の降順で返す
func ProjectDiseaseTrends(
	diseases []models.DiseaseProfile,
	curves SeasonalCurves,
	region string,
	horizonDays int,
	today time.Time,
	rng RandomSource,
) ([]models.DiseaseTrend, error) {
	if horizonDays < 1 {
		return nil, ErrInvalidHorizon
	}

	trends := make([]models.DiseaseTrend, 0, len(diseases))
	for _, disease := range diseases {
		daily := make([]models.DailyForecastPoint, horizonDays)
		total := 0
		for day := 0; day < horizonDays; day++ {
			date := today.AddDate(0, 0, day)
			factor := curves.Factor(disease.Season, date.Month())
			noise := rng.Uniform(diseaseNoiseLow, diseaseNoiseHigh)

			cases := int(math.Max(0, math.Round(float64(disease.BaseRate)*factor*noise)))
			daily[day] = models.DailyForecastPoint{
				Date:           date.Format("2006-01-02"),
				PredictedCases: cases,
			}
			total += cases
		}

		confidence := roundTo(rng.Uniform(diseaseConfidenceLow, diseaseConfidenceHigh), 2)
		currentFactor := curves.Factor(disease.Season, today.Month())

		detail := daily
		if len(detail) > dailyDetailDays {
			detail = detail[:dailyDetailDays]
		}

		trends = append(trends, models.DiseaseTrend{
			Disease:             disease.Name,
			Code:                disease.Code,
			PredictedCases30d:   total,
			AvgDailyCases:       roundTo(float64(total)/float64(horizonDays), 1),
			Trend:               classifyTrend(currentFactor),
			Confidence:          confidence,
			ContributingFactors: contributingFactors(disease, currentFactor, region),
			DailyForecast:       detail,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].PredictedCases30d > trends[j].PredictedCases30d
	})
	return trends, nil
}

// classifyTrend 当月の季節倍率からトレンドを分類
func classifyTrend(factor float64) models.Trend {
	switch {
	case factor > risingThreshold:
		return models.TrendRising
	case factor >= decliningThreshold:
		return models.TrendStable
	default:
		return models.TrendDeclining
	}
}

func contributingFactors(disease models.DiseaseProfile, currentFactor float64, region string) []string {
	factors := make([]string, 0, 3)
	if currentFactor > risingThreshold {
		factors = append(factors, fmt.Sprintf("Seasonal peak (%s season)", disease.Season))
	}
	factors = append(factors, "3-year historical pattern analysis")
	if region != "" {
		factors = append(factors, fmt.Sprintf("Regional data for %s", region))
	}
	return factors
}
