package services

import "time"

// scriptedSource は指定した値を順番に（末尾に達したら先頭から）返す
// 範囲は無視するが、呼び出し時の範囲は記録する
type scriptedSource struct {
	values []float64
	next   int
	calls  [][2]float64
}

func newScriptedSource(values ...float64) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Uniform(low, high float64) float64 {
	s.calls = append(s.calls, [2]float64{low, high})
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
