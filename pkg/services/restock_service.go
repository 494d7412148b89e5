package services

import (
	"time"

	"medicore-ai/pkg/models"
)

// RestockService 固定の補充推奨リストを返す
type RestockService struct {
	recommendations []models.RestockRecommendation
	now             Clock
}

// NewRestockService 新しい補充推奨サービスを作成
func NewRestockService(recommendations []models.RestockRecommendation, now Clock) *RestockService {
	if now == nil {
		now = time.Now
	}
	return &RestockService{
		recommendations: recommendations,
		now:             now,
	}
}

// Recommendations returns a copy of the catalog recommendations with a per-urgency tally.
func (s *RestockService) Recommendations() *models.RestockResponse {
	recs := make([]models.RestockRecommendation, len(s.recommendations))
	copy(recs, s.recommendations)

	var tally models.UrgencyTally
	for _, r := range recs {
		switch r.UrgencyLevel {
		case models.UrgencyCritical:
			tally.Critical++
		case models.UrgencyHigh:
			tally.High++
		case models.UrgencyMedium:
			tally.Medium++
		case models.UrgencyLow:
			tally.Low++
		}
	}

	return &models.RestockResponse{
		GeneratedAt:     s.now().Format(time.RFC3339),
		Recommendations: recs,
		Summary:         tally,
	}
}
