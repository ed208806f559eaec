// Package extract recovers plain text from PDFs and re-renders it as
// a fresh text-styled document.
//
// Extraction uses the pure Go ledongthuc/pdf reader. Pages without
// extractable text (scans, vector art) contribute nothing; this is
// approximate text recovery, not a faithful conversion.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/text"
)

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy extracts PDF text and re-renders it.
type Strategy struct{}

// New creates a new pdf-to-text strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeaturePDFToText}
}

// Convert extracts text from each item and renders it through the
// shared text pipeline. Unparseable items are skipped.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	b := builder.New(layout.TextPage())
	tracker := domain.NewProgressTracker(progress, len(batch))
	outcomes := make([]domain.ItemOutcome, 0, len(batch))

	for _, item := range batch {
		content, err := extractText(item.Content)
		if err != nil {
			logger.Warn("skipping %s: %v", item.Name, err)
			outcomes = append(outcomes, domain.SkippedOutcome(item, err))
			tracker.Advance()
			continue
		}
		if err := text.RenderDocument(b, item.Name, content); err != nil {
			return nil, err
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
		Feature:  domain.FeaturePDFToText,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

// extractText pulls plain text from every page of a PDF.
// Pages that fail text extraction are skipped rather than failing the
// whole document; some pages hold only images.
func extractText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("page %d: no extractable text: %v", i, err)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.TrimSpace(pageText))
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w: no extractable text", domain.ErrDecodeFailure)
	}
	return sb.String(), nil
}
