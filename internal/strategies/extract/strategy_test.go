package extract

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
)

// buildTextPDF produces a document with one line of text per page.
func buildTextPDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()
	b := builder.New(layout.TextPage())
	for _, line := range pageTexts {
		require.NoError(t, b.BeginPage())
		require.NoError(t, b.DrawText([]string{line}, 40, 40, 11, 14))
	}
	pdf, err := b.Finalize()
	require.NoError(t, err)
	return pdf
}

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	require.NoError(t, err)
	return n
}

func TestFeatures(t *testing.T) {
	assert.Equal(t, []domain.Feature{domain.FeaturePDFToText}, New().Features())
}

func TestConvert_ExtractsAndRerenders(t *testing.T) {
	batch := []domain.InputItem{
		domain.NewInputItem("doc.pdf", "", buildTextPDF(t, "hello extraction")),
	}

	result, err := New().Convert(context.Background(), batch, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.FeaturePDFToText, result.Feature)
	assert.Equal(t, 1, result.Converted())
	assert.Equal(t, 1, pageCount(t, result.PDF))
}

func TestConvert_SkipsCorruptItems(t *testing.T) {
	batch := []domain.InputItem{
		domain.NewInputItem("good.pdf", "", buildTextPDF(t, "some text")),
		domain.NewInputItem("corrupt.pdf", "", []byte("nope")),
	}

	result, err := New().Convert(context.Background(), batch, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted())
	assert.Equal(t, 1, result.Skipped())
	assert.Equal(t, domain.ItemSkipped, result.Outcomes[1].Status)
}

func TestConvert_NoExtractableTextIsSkipped(t *testing.T) {
	// A blank document parses fine but yields no text.
	blank := func() []byte {
		b := builder.New(layout.TextPage())
		pdf, err := b.Finalize()
		require.NoError(t, err)
		return pdf
	}()

	batch := []domain.InputItem{
		domain.NewInputItem("blank.pdf", "", blank),
	}

	result, err := New().Convert(context.Background(), batch, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped())
	assert.NotEmpty(t, result.Outcomes[0].Reason)
	// Still a valid one-page document.
	assert.Equal(t, 1, pageCount(t, result.PDF))
}

func TestExtractText_MultiPage(t *testing.T) {
	pdf := buildTextPDF(t, "first page words", "second page words")

	out, err := extractText(pdf)
	require.NoError(t, err)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestConvert_ProgressReachesHundred(t *testing.T) {
	batch := []domain.InputItem{
		domain.NewInputItem("doc.pdf", "", buildTextPDF(t, "text")),
	}

	var last int
	_, err := New().Convert(context.Background(), batch, func(p int) { last = p })

	require.NoError(t, err)
	assert.Equal(t, 100, last)
}
