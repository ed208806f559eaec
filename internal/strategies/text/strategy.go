// Package text renders plain text documents as paginated PDFs.
//
// Its RenderDocument helper is the shared text pipeline: the word and
// pdf-to-text strategies feed recovered text through it so all
// text-styled output paginates identically.
package text

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
)

// Fixed text metrics. Not externally tunable.
const (
	titleSize  = 16.0
	bodySize   = 11.0
	lineHeight = 14.0
	titleBlock = 34.0 // title line plus rule plus spacing
)

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy converts text batches to PDF.
type Strategy struct{}

// New creates a new text-to-PDF strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureTextToPDF}
}

// Convert renders each item as a titled, paginated document section.
// Items whose bytes are not valid text are skipped.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	b := builder.New(layout.TextPage())
	tracker := domain.NewProgressTracker(progress, len(batch))
	outcomes := make([]domain.ItemOutcome, 0, len(batch))

	for _, item := range batch {
		content, err := DecodeText(item.Content)
		if err != nil {
			logger.Warn("skipping %s: %v", item.Name, err)
			outcomes = append(outcomes, domain.SkippedOutcome(item, err))
			tracker.Advance()
			continue
		}
		if err := RenderDocument(b, item.Name, content); err != nil {
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
		Feature:  domain.FeatureTextToPDF,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

// DecodeText interprets raw bytes as UTF-8 text. A leading BOM is
// stripped. Invalid encodings are a DecodeFailure, handled by the
// caller as a per-item skip.
func DecodeText(content []byte) (string, error) {
	content = []byte(strings.TrimPrefix(string(content), "\uFEFF"))
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: not valid UTF-8 text", domain.ErrDecodeFailure)
	}
	return string(content), nil
}

// RenderDocument starts a new page bearing the document title and a
// horizontal rule, then paginates the body below it, opening further
// pages as pagination dictates.
func RenderDocument(b *builder.Builder, title, body string) error {
	geo := b.Geometry()

	if err := b.BeginPage(); err != nil {
		return err
	}
	if err := b.DrawText([]string{title}, geo.Margin, geo.Margin, titleSize, titleSize+2); err != nil {
		return err
	}
	if err := b.DrawRule(geo.Margin + titleBlock - 8); err != nil {
		return err
	}

	measure := func(s string) float64 { return b.StringWidth(s, bodySize) }
	body, _ = layout.Truncate(body)
	lines := layout.WrapText(body, geo.DrawableWidth(), measure)

	// The first page loses the title block; later pages use the full
	// drawable height.
	first, rest := layout.PackPage(lines, lineHeight, geo.DrawableHeight()-titleBlock)
	if err := b.DrawText(first, geo.Margin, geo.Margin+titleBlock, bodySize, lineHeight); err != nil {
		return err
	}
	if len(rest) == 0 {
		return nil
	}
	for _, page := range layout.Paginate(rest, lineHeight, geo.DrawableHeight()) {
		if err := b.BeginPage(); err != nil {
			return err
		}
		if err := b.DrawText(page, geo.Margin, geo.Margin, bodySize, lineHeight); err != nil {
			return err
		}
	}
	return nil
}
