// Package compress rewrites a PDF through pdfcpu's optimisation pass,
// dropping redundant objects and recompressing streams.
package compress

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
)

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy optimises a single PDF.
type Strategy struct{}

// New creates a new compress strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureCompressPDF}
}

// Convert requires exactly one PDF. The input is passed through
// pdfcpu's optimiser; an unparseable document is a batch-level error
// because there is no other item to fall back to.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	if len(batch) != 1 {
		return nil, fmt.Errorf("%w: compress requires exactly one PDF, got %d items", domain.ErrInvalidInput, len(batch))
	}
	item := batch[0]
	tracker := domain.NewProgressTracker(progress, 1)

	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(item.Content), &out, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("optimising %s: %w: %v", item.Name, domain.ErrDecodeFailure, err)
	}
	tracker.Finish()

	return &domain.ConversionResult{
		Feature:  domain.FeatureCompressPDF,
		PDF:      out.Bytes(),
		Outcomes: []domain.ItemOutcome{domain.ConvertedOutcome(item)},
	}, nil
}
