package mcp

import (
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Converter runs conversions and serves the feature catalog.
	Converter driving.ConversionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConversionService
	}
	return nil
}
