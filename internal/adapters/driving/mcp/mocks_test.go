package mcp

import (
	"context"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// mockConversionService is a mock implementation of
// driving.ConversionService.
type mockConversionService struct {
	result *domain.ConversionResult
	err    error

	gotFeature domain.Feature
	gotBatch   []domain.InputItem
}

func (m *mockConversionService) Convert(
	_ context.Context,
	feature domain.Feature,
	batch []domain.InputItem,
	_ domain.ProgressFunc,
) (*domain.ConversionResult, error) {
	m.gotFeature = feature
	m.gotBatch = batch
	return m.result, m.err
}

func (m *mockConversionService) Features() []domain.FeatureInfo {
	return domain.Features()
}
