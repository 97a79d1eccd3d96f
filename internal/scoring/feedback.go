package scoring

import (
	"math"

	"github.com/hirelens/resume-scorer/internal/domain"
)

// newFeedback returns feedback with non-nil lists so JSON renders empty
// arrays instead of null.
func newFeedback() domain.Feedback {
	return domain.Feedback{
		Strengths:    []string{},
		Improvements: []string{},
		Errors:       []string{},
	}
}

func uniqueInOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
