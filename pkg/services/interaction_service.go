package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"medicore-ai/pkg/models"
)

// ErrNoDrugs is returned when a check request names no drugs.
var ErrNoDrugs = errors.New("at least one drug name is required")

// InteractionService 薬物相互作用チェッカー
type InteractionService struct {
	interactions []models.DrugInteraction
	now          Clock
}

// NewInteractionService 新しい相互作用チェックサービスを作成
func NewInteractionService(interactions []models.DrugInteraction, now Clock) *InteractionService {
	if now == nil {
		now = time.Now
	}
	return &InteractionService{
		interactions: interactions,
		now:          now,
	}
}

// Check 入力された薬剤の全ペアを既知の相互作用と照合
func (s *InteractionService) Check(drugs []string) (*models.InteractionCheckResponse, error) {
	checked := normalizeDrugList(drugs)
	if len(checked) == 0 {
		return nil, ErrNoDrugs
	}

	type hit struct {
		warning models.InteractionWarning
		order   int
	}
	var hits []hit
	for i := 0; i < len(checked); i++ {
		for j := i + 1; j < len(checked); j++ {
			for idx, in := range s.interactions {
				if !pairMatches(in, checked[i], checked[j]) {
					continue
				}
				hits = append(hits, hit{
					warning: models.InteractionWarning{
						Drug1:            checked[i],
						Drug2:            checked[j],
						Drugs:            []string{checked[i], checked[j]},
						Severity:         in.Severity.Level(),
						ClinicalSeverity: in.Severity,
						Description:      in.Description,
						Management:       in.Management,
					},
					order: idx,
				})
			}
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		ra, rb := hits[a].warning.ClinicalSeverity.Rank(), hits[b].warning.ClinicalSeverity.Rank()
		if ra != rb {
			return ra < rb
		}
		return hits[a].order < hits[b].order
	})

	warnings := make([]models.InteractionWarning, len(hits))
	for i, h := range hits {
		warnings[i] = h.warning
	}

	return &models.InteractionCheckResponse{
		Safe:         len(warnings) == 0,
		Warnings:     warnings,
		CheckedDrugs: checked,
		CheckedAt:    s.now().Format(time.RFC3339),
	}, nil
}

// normalizeDrugList 空白を除去し、大文字小文字を無視して重複を取り除く
func normalizeDrugList(drugs []string) []string {
	seen := make(map[string]bool, len(drugs))
	out := make([]string, 0, len(drugs))
	for _, d := range drugs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		key := strings.ToLower(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

func pairMatches(in models.DrugInteraction, x, y string) bool {
	return (mentions(x, in.DrugA) && mentions(y, in.DrugB)) ||
		(mentions(x, in.DrugB) && mentions(y, in.DrugA))
}

// mentions reports whether the entered drug (e.g. "Warfarin 5mg") names the catalog drug.
func mentions(entered, name string) bool {
	return strings.Contains(strings.ToLower(entered), strings.ToLower(name))
}
