// Package split re-paginates one PDF with a "page X of N" stamp on
// every page.
//
// The feature name suggests producing N separate files; this strategy
// deliberately keeps the single-document semantic and labels each
// page instead, so the one-blob output contract holds for every
// conversion kind.
package split

import (
	"context"
	"fmt"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
)

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy splits one PDF into labelled pages.
type Strategy struct{}

// New creates a new split strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureSplitPDF}
}

// Convert requires exactly one parseable PDF. Both violations are
// batch-level preconditions and propagate, unlike per-item failures
// in the multi-item strategies.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	if len(batch) != 1 {
		return nil, fmt.Errorf("%w: split requires exactly one PDF, got %d items", domain.ErrInvalidInput, len(batch))
	}
	item := batch[0]

	b := builder.New(layout.ImagePage())
	src, err := b.OpenSource(item.Content)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", item.Name, err)
	}

	total := src.PageCount()
	tracker := domain.NewProgressTracker(progress, total)
	for page := 1; page <= total; page++ {
		if err := src.CopyPage(page); err != nil {
			return nil, fmt.Errorf("copying page %d: %w", page, err)
		}
		if err := b.StampPageNumber(page, total); err != nil {
			return nil, err
		}
		tracker.Advance()
	}

	pdf, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	tracker.Finish()

	return &domain.ConversionResult{
		Feature:  domain.FeatureSplitPDF,
		PDF:      pdf,
		Outcomes: []domain.ItemOutcome{domain.ConvertedOutcome(item)},
	}, nil
}
