package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

func writeTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestServer_handleConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts files and writes output", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempFile(t, dir, "notes.txt", []byte("hello"))

		item := domain.NewInputItem("notes.txt", "", []byte("hello"))
		mock := &mockConversionService{
			result: &domain.ConversionResult{
				Feature:  domain.FeatureTextToPDF,
				PDF:      []byte("%PDF-fake"),
				Outcomes: []domain.ItemOutcome{domain.ConvertedOutcome(item)},
			},
		}
		server, err := NewServer(&Ports{Converter: mock})
		require.NoError(t, err)

		outPath := filepath.Join(dir, "out.pdf")
		input := ConvertInput{
			Feature:    "text-to-pdf",
			Paths:      []string{path},
			OutputPath: outPath,
		}
		_, output, err := server.handleConvert(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, outPath, output.OutputPath)
		assert.Equal(t, 1, output.Converted)
		assert.Equal(t, 0, output.Skipped)
		require.Len(t, output.Items, 1)
		assert.Equal(t, "converted", output.Items[0].Status)

		written, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-fake"), written)

		assert.Equal(t, domain.FeatureTextToPDF, mock.gotFeature)
		require.Len(t, mock.gotBatch, 1)
		assert.Equal(t, "notes.txt", mock.gotBatch[0].Name)
	})

	t.Run("empty paths rejected", func(t *testing.T) {
		server, err := NewServer(&Ports{Converter: &mockConversionService{}})
		require.NoError(t, err)

		_, _, err = server.handleConvert(ctx, nil, ConvertInput{Feature: "text-to-pdf"})
		assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Converter: &mockConversionService{}})
		require.NoError(t, err)

		input := ConvertInput{
			Feature: "text-to-pdf",
			Paths:   []string{filepath.Join(t.TempDir(), "nope.txt")},
		}
		_, _, err = server.handleConvert(ctx, nil, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading")
	})

	t.Run("conversion failure propagates", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempFile(t, dir, "a.pdf", []byte("x"))

		mock := &mockConversionService{err: errors.New("conversion blew up")}
		server, err := NewServer(&Ports{Converter: mock})
		require.NoError(t, err)

		_, _, err = server.handleConvert(ctx, nil, ConvertInput{
			Feature: "split-pdf",
			Paths:   []string{path},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conversion blew up")
	})

	t.Run("empty feature defaults to images", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempFile(t, dir, "photo.jpg", []byte("x"))

		mock := &mockConversionService{
			result: &domain.ConversionResult{Feature: domain.FeatureImagesToPDF, PDF: []byte("%PDF-")},
		}
		server, err := NewServer(&Ports{Converter: mock})
		require.NoError(t, err)

		_, _, err = server.handleConvert(ctx, nil, ConvertInput{
			Paths:      []string{path},
			OutputPath: filepath.Join(dir, "out.pdf"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.FeatureImagesToPDF, mock.gotFeature)
	})

	t.Run("default output path derives from first input", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTempFile(t, dir, "holiday.jpg", []byte("x"))

		mock := &mockConversionService{
			result: &domain.ConversionResult{Feature: domain.FeatureImagesToPDF, PDF: []byte("%PDF-")},
		}
		server, err := NewServer(&Ports{Converter: mock})
		require.NoError(t, err)

		_, output, err := server.handleConvert(ctx, nil, ConvertInput{
			Feature: "images-to-pdf",
			Paths:   []string{path},
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "holiday-converted.pdf"), output.OutputPath)
		assert.FileExists(t, output.OutputPath)
	})
}

func TestServer_handleListFeatures(t *testing.T) {
	server, err := NewServer(&Ports{Converter: &mockConversionService{}})
	require.NoError(t, err)

	_, output, err := server.handleListFeatures(context.Background(), nil, struct{}{})

	require.NoError(t, err)
	require.Len(t, output.Features, len(domain.Features()))
	assert.Equal(t, "images-to-pdf", output.Features[0].ID)
	assert.NotEmpty(t, output.Features[0].Title)
	assert.True(t, output.Features[0].Available)
}
