package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driving"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
)

// Ensure Converter implements the interface.
var _ driving.ConversionService = (*Converter)(nil)

// Converter is the conversion dispatcher. It validates the batch,
// routes to the registered strategy and normalises progress
// reporting; the strategies own everything page-related.
type Converter struct {
	registry driven.StrategyRegistry
	history  driven.HistoryStore
}

// NewConverter creates the dispatcher.
// history may be nil - finished conversions are then not recorded.
func NewConverter(registry driven.StrategyRegistry, history driven.HistoryStore) *Converter {
	return &Converter{registry: registry, history: history}
}

// Convert dispatches the batch to the strategy registered for
// feature. See driving.ConversionService for the contract.
func (c *Converter) Convert(ctx context.Context, feature domain.Feature, batch []domain.InputItem, onProgress domain.ProgressFunc) (*domain.ConversionResult, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: no files submitted", domain.ErrEmptyBatch)
	}

	strategy := c.registry.Resolve(feature)

	logger.Info("converting %d item(s) via %s", len(batch), feature)
	result, err := strategy.Convert(ctx, batch, normaliseProgress(onProgress))
	if err != nil {
		return nil, fmt.Errorf("conversion %s: %w", feature, err)
	}

	c.record(ctx, result, len(batch))
	return result, nil
}

// Features returns the conversion catalog.
func (c *Converter) Features() []domain.FeatureInfo {
	return domain.Features()
}

// normaliseProgress clamps emissions to [0, 100] and enforces
// monotonicity so no strategy bug can run the percentage backwards.
func normaliseProgress(report domain.ProgressFunc) domain.ProgressFunc {
	if report == nil {
		return nil
	}
	last := -1
	return func(percent int) {
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		if percent < last {
			return
		}
		last = percent
		report(percent)
	}
}

// record stores the finished conversion, best effort.
func (c *Converter) record(ctx context.Context, result *domain.ConversionResult, items int) {
	if c.history == nil {
		return
	}
	rec := domain.ConversionRecord{
		ID:          uuid.New().String(),
		Feature:     result.Feature,
		Items:       items,
		Converted:   result.Converted(),
		Skipped:     result.Skipped(),
		OutputBytes: int64(len(result.PDF)),
		CreatedAt:   time.Now(),
	}
	if err := c.history.Record(ctx, rec); err != nil {
		logger.Warn("recording conversion history: %v", err)
	}
}
