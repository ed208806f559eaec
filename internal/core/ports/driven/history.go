package driven

import (
	"context"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// HistoryStore persists conversion history.
type HistoryStore interface {
	// Record stores one finished conversion.
	Record(ctx context.Context, rec domain.ConversionRecord) error

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]domain.ConversionRecord, error)

	// Close releases the underlying storage.
	Close() error
}
