package builder

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b := New(layout.TextPage())
	require.NotNil(t, b)
	return b
}

// pageCount parses a finished document and returns its page count.
func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	require.NoError(t, err)
	return n
}

// buildSamplePDF produces a small document with the given number of
// pages, for use as merge/split source material.
func buildSamplePDF(t *testing.T, pages int) []byte {
	t.Helper()
	b := New(layout.TextPage())
	for i := 0; i < pages; i++ {
		require.NoError(t, b.BeginPage())
		require.NoError(t, b.DrawText([]string{"sample"}, 40, 40, 11, 14))
	}
	pdf, err := b.Finalize()
	require.NoError(t, err)
	return pdf
}

// encryptSamplePDF password-protects a document. Encrypted files pass
// the page-count preflight with the default configuration but their
// content streams cannot be imported.
func encryptSamplePDF(t *testing.T, pdf []byte) []byte {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.OwnerPW = "owner-secret"
	var out bytes.Buffer
	require.NoError(t, api.Encrypt(bytes.NewReader(pdf), &out, conf))
	return out.Bytes()
}

func sampleJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 5, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func TestNew_StartsEmpty(t *testing.T) {
	b := newTestBuilder(t)
	assert.Equal(t, StateEmpty, b.State())
	assert.Equal(t, 0, b.PageCount())
}

func TestBeginPage_TransitionsToBuilding(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.BeginPage())
	assert.Equal(t, StateBuilding, b.State())
	assert.Equal(t, 1, b.PageCount())

	require.NoError(t, b.BeginPage())
	assert.Equal(t, 2, b.PageCount())
}

func TestDrawText_CreatesFirstPageLazily(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.DrawText([]string{"hello"}, 40, 40, 11, 14))
	assert.Equal(t, StateBuilding, b.State())
	assert.Equal(t, 1, b.PageCount())
}

func TestDrawImage(t *testing.T) {
	b := New(layout.ImagePage())
	placement, err := b.Geometry().Fit(64, 48)
	require.NoError(t, err)

	require.NoError(t, b.DrawImage(placement, sampleJPEG(t, 64, 48)))
	assert.Equal(t, 1, b.PageCount())

	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestFinalize_EmptyEmitsOneBlankPage(t *testing.T) {
	b := newTestBuilder(t)

	pdf, err := b.Finalize()
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestFinalize_Twice(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Finalize()
	require.NoError(t, err)

	_, err = b.Finalize()
	assert.ErrorIs(t, err, domain.ErrIllegalState)
}

func TestDrawAfterFinalize(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.Finalize()
	require.NoError(t, err)

	assert.ErrorIs(t, b.BeginPage(), domain.ErrIllegalState)
	assert.ErrorIs(t, b.DrawText([]string{"x"}, 40, 40, 11, 14), domain.ErrIllegalState)
	assert.ErrorIs(t, b.DrawCaption("x"), domain.ErrIllegalState)
	assert.ErrorIs(t, b.StampPageNumber(1, 1), domain.ErrIllegalState)
}

func TestFinalize_PageCountMatchesBeginPage(t *testing.T) {
	b := newTestBuilder(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.BeginPage())
	}

	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 3, pageCount(t, pdf))
}

func TestStringWidth(t *testing.T) {
	b := newTestBuilder(t)

	narrow := b.StringWidth("i", 11)
	wide := b.StringWidth("warehouse", 11)
	assert.Greater(t, wide, narrow)

	small := b.StringWidth("word", 8)
	large := b.StringWidth("word", 16)
	assert.Greater(t, large, small)

	// Measuring draws nothing.
	assert.Equal(t, StateEmpty, b.State())
}

func TestCaptionAndRuleAndStamp(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.BeginPage())
	require.NoError(t, b.DrawCaption("photo.jpg"))
	require.NoError(t, b.DrawRule(60))
	require.NoError(t, b.StampPageNumber(1, 3))

	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestOpenSource_CorruptInput(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.OpenSource([]byte("not a pdf at all"))
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestOpenSource_AfterFinalize(t *testing.T) {
	b := newTestBuilder(t)
	_, err := b.Finalize()
	require.NoError(t, err)

	_, err = b.OpenSource(buildSamplePDF(t, 1))
	assert.ErrorIs(t, err, domain.ErrIllegalState)
}

func TestCopyPage(t *testing.T) {
	src := buildSamplePDF(t, 2)

	b := newTestBuilder(t)
	source, err := b.OpenSource(src)
	require.NoError(t, err)
	assert.Equal(t, 2, source.PageCount())

	require.NoError(t, source.CopyPage(1))
	require.NoError(t, source.CopyPage(2))
	assert.Equal(t, 2, b.PageCount())

	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(t, pdf))
}

func TestCopyPage_OutOfRange(t *testing.T) {
	b := newTestBuilder(t)
	source, err := b.OpenSource(buildSamplePDF(t, 1))
	require.NoError(t, err)

	assert.ErrorIs(t, source.CopyPage(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, source.CopyPage(2), domain.ErrInvalidInput)
}

func TestCopyPage_EncryptedSource(t *testing.T) {
	encrypted := encryptSamplePDF(t, buildSamplePDF(t, 1))

	b := newTestBuilder(t)
	source, err := b.OpenSource(encrypted)
	require.NoError(t, err, "encrypted input passes the page-count preflight")

	err = source.CopyPage(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)

	// The builder survives and still finalises a valid document.
	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, pdf))
}

func TestCopyPage_PreservesInsertionOrder(t *testing.T) {
	first := buildSamplePDF(t, 1)
	second := buildSamplePDF(t, 2)

	b := newTestBuilder(t)

	srcA, err := b.OpenSource(first)
	require.NoError(t, err)
	require.NoError(t, srcA.CopyPage(1))

	srcB, err := b.OpenSource(second)
	require.NoError(t, err)
	for n := 1; n <= srcB.PageCount(); n++ {
		require.NoError(t, srcB.CopyPage(n))
	}

	pdf, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 3, pageCount(t, pdf))
}
