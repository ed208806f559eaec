package driving

import (
	"context"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// ConversionService is the primary entry point for document assembly.
type ConversionService interface {
	// Convert runs the strategy registered for feature over the batch
	// and returns the finalised document with per-item outcomes.
	//
	// The batch must be non-empty; an empty batch is rejected with
	// domain.ErrEmptyBatch before any strategy runs. Per-item failures
	// inside a strategy are tolerated and reported in the outcomes.
	// Unknown features route to the placeholder strategy, never an
	// error.
	//
	// onProgress may be nil. When set, it receives monotonically
	// non-decreasing percentages in [0, 100]; the final call for any
	// completed conversion is exactly 100.
	Convert(ctx context.Context, feature domain.Feature, batch []domain.InputItem, onProgress domain.ProgressFunc) (*domain.ConversionResult, error)

	// Features returns the conversion catalog in display order.
	Features() []domain.FeatureInfo
}
