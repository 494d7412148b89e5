package services

import (
	"math"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomSource 一様乱数の供給元
// テストでは決定的な値を返す実装に差し替える
type RandomSource interface {
	Uniform(low, high float64) float64
}

// Clock は現在時刻を返す
type Clock func() time.Time

// FakerSource gofakeitによるRandomSource実装
// 複数リクエストから同時に呼ばれるためmutexで保護する
type FakerSource struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakerSource creates a source seeded with seed; 0 picks a random seed.
func NewFakerSource(seed uint64) *FakerSource {
	return &FakerSource{faker: gofakeit.New(seed)}
}

// Uniform returns a value in [low, high].
func (s *FakerSource) Uniform(low, high float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.Float64Range(low, high)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
