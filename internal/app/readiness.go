package app

import (
	"context"
	"fmt"

	"github.com/hirelens/resume-scorer/internal/catalog"
	"github.com/hirelens/resume-scorer/internal/scoring"
)

// BuildReadinessChecks returns the two readiness checks: catalog and scorer.
// Both collaborators live in-process, so readiness degrades only when boot
// wiring was skipped or the catalog lost all domains.
func BuildReadinessChecks(cat *catalog.Catalog, scorer *scoring.Scorer) (
	func(ctx context.Context) error,
	func(ctx context.Context) error,
) {
	catalogCheck := func(_ context.Context) error {
		if cat == nil {
			return fmt.Errorf("catalog not configured")
		}
		if len(cat.Keys()) == 0 {
			return fmt.Errorf("catalog has no domains")
		}
		return nil
	}
	scorerCheck := func(_ context.Context) error {
		if scorer == nil {
			return fmt.Errorf("scoring engine not configured")
		}
		return nil
	}
	return catalogCheck, scorerCheck
}
