package driven

import (
	"context"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// Strategy implements one conversion kind. Each strategy composes the
// layout and builder packages over a single output document.
type Strategy interface {
	// Features returns the feature IDs this strategy serves.
	Features() []domain.Feature

	// Convert processes the batch in order and returns the finalised
	// document. Items are processed to completion one at a time;
	// output page order follows batch order.
	//
	// Per-item failures are caught, logged and reported as skipped
	// outcomes - the strategy always attempts a best-effort document.
	// Only batch-level precondition violations return an error.
	Convert(ctx context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error)
}

// StrategyRegistry routes a feature ID to its strategy.
type StrategyRegistry interface {
	// Register adds a strategy under every feature ID it serves.
	Register(s Strategy)

	// Resolve returns the strategy for a feature. Unknown or
	// not-yet-implemented features resolve to a fallback strategy;
	// Resolve never returns nil.
	Resolve(feature domain.Feature) Strategy
}
