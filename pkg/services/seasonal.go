package services

import (
	"time"

	"medicore-ai/pkg/models"
)

// defaultSeasonalFactor 曲線に該当月がない場合の倍率
const defaultSeasonalFactor = 1.0

// SeasonalCurves 季節区分ごとの月別倍率
type SeasonalCurves map[models.Season]map[int]float64

// Factor 季節区分と月から需要倍率を返す
// 曲線が無い、または月が定義されていない場合は1.0
func (c SeasonalCurves) Factor(season models.Season, month time.Month) float64 {
	curve, ok := c[season]
	if !ok {
		return defaultSeasonalFactor
	}
	if factor, ok := curve[int(month)]; ok {
		return factor
	}
	return defaultSeasonalFactor
}
