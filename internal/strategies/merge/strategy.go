// Package merge concatenates the pages of several PDFs into one
// document.
//
// Pages are copied byte-for-byte via imported templates, never
// re-rendered, so each keeps its original dimensions and content.
package merge

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

// Strategy merges PDF batches.
type Strategy struct{}

// New creates a new merge strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureMergePDF}
}

// Convert copies every page of every parseable item into the output,
// in batch order then internal page order. Unparseable items are
// skipped; if all items fail the result degrades to a single blank
// page rather than an invalid zero-page document.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	b := builder.New(layout.ImagePage())
	tracker := domain.NewProgressTracker(progress, len(batch))
	outcomes := make([]domain.ItemOutcome, 0, len(batch))

	for _, item := range batch {
		if err := copyAllPages(b, item); err != nil {
			logger.Warn("skipping %s: %v", item.Name, err)
			outcomes = append(outcomes, domain.SkippedOutcome(item, err))
			tracker.Advance()
			continue
		}
		outcomes = append(outcomes, domain.ConvertedOutcome(item))
		tracker.Advance()
	}

	pdf, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	tracker.Finish()

	return &domain.ConversionResult{
		Feature:  domain.FeatureMergePDF,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

func copyAllPages(b *builder.Builder, item domain.InputItem) error {
	src, err := b.OpenSource(item.Content)
	if err != nil {
		return err
	}
	for page := 1; page <= src.PageCount(); page++ {
		if err := src.CopyPage(page); err != nil {
			return fmt.Errorf("copying page %d: %w", page, err)
		}
	}
	return nil
}
