// Package images converts raster images to a PDF, one image per page.
//
// Decoding supports the standard library formats plus BMP, TIFF and
// WebP via golang.org/x/image. Every decoded raster is re-encoded to
// JPEG at a fixed quality before embedding; this is a deliberate
// simplification, not a configurable option.
package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif" // GIF decoder
	_ "image/png" // PNG decoder

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
)

// jpegQuality is the fixed re-encode quality factor.
const jpegQuality = 95

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy converts image batches to PDF.
type Strategy struct{}

// New creates a new images-to-PDF strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureImagesToPDF}
}

// Convert places each decodable image on its own page, centred and
// scaled to preserve aspect ratio, with the file name as a footer
// caption. Undecodable items are skipped; no blank page is inserted
// in their place.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	b := builder.New(layout.ImagePage())
	tracker := domain.NewProgressTracker(progress, len(batch))
	outcomes := make([]domain.ItemOutcome, 0, len(batch))

	for _, item := range batch {
		if err := s.addImagePage(b, item); err != nil {
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
		Feature:  domain.FeatureImagesToPDF,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

// addImagePage decodes, lays out and draws one item. Any failure
// leaves the builder without a new page so skipped items never leave
// a blank page behind.
func (s *Strategy) addImagePage(b *builder.Builder, item domain.InputItem) error {
	img, format, err := image.Decode(bytes.NewReader(item.Content))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}

	bounds := img.Bounds()
	placement, err := b.Geometry().Fit(float64(bounds.Dx()), float64(bounds.Dy()))
	if err != nil {
		return err
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("%w: re-encoding %s: %v", domain.ErrDecodeFailure, format, err)
	}

	// Only the very first successful item draws on the lazily created
	// first page; later items open their own.
	if b.PageCount() > 0 {
		if err := b.BeginPage(); err != nil {
			return err
		}
	}
	if err := b.DrawImage(placement, encoded.Bytes()); err != nil {
		return err
	}
	return b.DrawCaption(item.Name)
}
