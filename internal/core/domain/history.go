package domain

import "time"

// ConversionRecord is one history entry for a finished conversion.
type ConversionRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Feature is the conversion kind that ran.
	Feature Feature

	// Items is the batch size.
	Items int

	// Converted is the number of items that contributed pages.
	Converted int

	// Skipped is the number of items dropped by best-effort handling.
	Skipped int

	// OutputBytes is the size of the produced document.
	OutputBytes int64

	// CreatedAt is when the conversion finished.
	CreatedAt time.Time
}
