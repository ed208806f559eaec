package services

import (
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.StrategyRegistry = (*Registry)(nil)

// FallbackFunc builds the strategy served for feature IDs without a
// registration. The composition root wires the placeholder strategy
// here so services stay free of strategy imports.
type FallbackFunc func(feature domain.Feature) driven.Strategy

// Registry is a routing table from feature ID to strategy.
// It holds no per-call state; one registry serves all conversions.
type Registry struct {
	strategies map[domain.Feature]driven.Strategy
	fallback   FallbackFunc
}

// NewRegistry creates a registry with the given fallback.
func NewRegistry(fallback FallbackFunc) *Registry {
	return &Registry{
		strategies: make(map[domain.Feature]driven.Strategy),
		fallback:   fallback,
	}
}

// Register adds a strategy under every feature ID it serves.
// A later registration for the same feature wins.
func (r *Registry) Register(s driven.Strategy) {
	for _, f := range s.Features() {
		r.strategies[f] = s
	}
}

// Resolve returns the strategy for a feature, or the fallback for
// unknown and not-yet-implemented features. Never returns nil.
func (r *Registry) Resolve(feature domain.Feature) driven.Strategy {
	if s, ok := r.strategies[feature]; ok {
		return s
	}
	return r.fallback(feature)
}
