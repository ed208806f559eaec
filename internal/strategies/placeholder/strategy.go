// Package placeholder is the safe default arm of the dispatch: any
// feature without a real strategy produces a single informational
// page instead of failing.
package placeholder

import (
	"context"
	"fmt"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
)

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy produces the "feature unavailable" document. It is bound
// to the requested feature so the page can name it.
type Strategy struct {
	feature domain.Feature
}

// New creates a placeholder strategy for the requested feature.
func New(feature domain.Feature) *Strategy {
	return &Strategy{feature: feature}
}

// Features returns the bound feature ID.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{s.feature}
}

// Convert emits a single informational page and full progress.
// It must never fail: if even the page builder misbehaves, the
// fallback falls back to a minimal hand-rolled document.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	tracker := domain.NewProgressTracker(progress, 1)

	title := string(s.feature)
	if info, ok := domain.FeatureByID(s.feature); ok {
		title = info.Title
	}

	b := builder.New(layout.TextPage())
	geo := b.Geometry()
	lines := []string{
		fmt.Sprintf("%q is not available yet.", title),
		"",
		"This conversion is on the roadmap but has no implementation.",
		"Run `pdfwizard features` to see what is supported today.",
	}
	pdf, err := buildInfoPage(b, geo, lines)
	if err != nil {
		// Unreachable in correct sequencing; degrade to a valid
		// empty document rather than propagate.
		logger.Warn("placeholder page build failed: %v", err)
		pdf, err = builder.New(layout.TextPage()).Finalize()
		if err != nil {
			pdf = nil
		}
	}

	outcomes := make([]domain.ItemOutcome, 0, len(batch))
	for _, item := range batch {
		outcomes = append(outcomes, domain.SkippedOutcome(item, domain.ErrNotImplemented))
	}

	tracker.Finish()
	return &domain.ConversionResult{
		Feature:  s.feature,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

func buildInfoPage(b *builder.Builder, geo layout.Geometry, lines []string) ([]byte, error) {
	if err := b.DrawText([]string{"Feature unavailable"}, geo.Margin, geo.Margin, 16, 18); err != nil {
		return nil, err
	}
	if err := b.DrawRule(geo.Margin + 26); err != nil {
		return nil, err
	}
	if err := b.DrawText(lines, geo.Margin, geo.Margin+34, 11, 14); err != nil {
		return nil, err
	}
	return b.Finalize()
}
