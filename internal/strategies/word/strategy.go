// Package word recovers text from Word documents and renders it as
// PDF.
//
// DOCX files are ZIP archives; text comes from parsing
// word/document.xml. Legacy .doc files have no cheap structured
// parser, so recovery falls back to scanning the raw bytes for
// printable runs. Both paths are approximate text recovery: output
// may be lossy or garbled and no byte-exact fidelity is promised.
package word

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/builder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/text"
)

// minRunLength filters noise when scanning legacy .doc bytes:
// printable runs shorter than this are discarded.
const minRunLength = 4

// Ensure Strategy implements the interface.
var _ driven.Strategy = (*Strategy)(nil)

// Strategy converts Word documents to PDF, best effort.
type Strategy struct{}

// New creates a new Word-to-PDF strategy.
func New() *Strategy {
	return &Strategy{}
}

// Features returns the feature IDs this strategy serves.
func (s *Strategy) Features() []domain.Feature {
	return []domain.Feature{domain.FeatureWordToPDF}
}

// Convert extracts text from each document and renders it through the
// shared text pipeline. Unreadable items are skipped.
func (s *Strategy) Convert(_ context.Context, batch []domain.InputItem, progress domain.ProgressFunc) (*domain.ConversionResult, error) {
	b := builder.New(layout.TextPage())
	tracker := domain.NewProgressTracker(progress, len(batch))
	outcomes := make([]domain.ItemOutcome, 0, len(batch))

	for _, item := range batch {
		content, err := ExtractText(item.Content)
		if err != nil {
			logger.Warn("skipping %s: %v", item.Name, err)
			outcomes = append(outcomes, domain.SkippedOutcome(item, err))
			tracker.Advance()
			continue
		}
		if err := text.RenderDocument(b, item.Name, content); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, domain.ConvertedOutcome(item))
		tracker.Advance()
	}

	pdf, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	tracker.Finish()

	return &domain.ConversionResult{
		Feature:  domain.FeatureWordToPDF,
		PDF:      pdf,
		Outcomes: outcomes,
	}, nil
}

// ExtractText recovers text from DOCX or legacy DOC bytes.
func ExtractText(content []byte) (string, error) {
	if reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content))); err == nil {
		return extractDocumentText(reader)
	}
	return extractLegacyText(content)
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: opening document.xml: %v", domain.ErrDecodeFailure, err)
		}

		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: reading document.xml: %v", domain.ErrDecodeFailure, err)
		}

		return parseDocumentXML(raw)
	}
	return "", fmt.Errorf("%w: archive has no word/document.xml", domain.ErrDecodeFailure)
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

// paragraph represents a w:p element.
type paragraph struct {
	Runs []run `xml:"r"`
}

// run represents a w:r element containing text.
type run struct {
	Text []string `xml:"t"`
}

// parseDocumentXML extracts paragraph text from the document XML.
func parseDocumentXML(raw []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("%w: parsing document.xml: %v", domain.ErrDecodeFailure, err)
	}

	var sb strings.Builder
	for i, p := range doc.Body.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, r := range p.Runs {
			for _, t := range r.Text {
				sb.WriteString(t)
			}
		}
	}
	return sb.String(), nil
}

// extractLegacyText scans raw bytes for printable runs. This is
// approximate recovery for the legacy binary .doc format.
func extractLegacyText(content []byte) (string, error) {
	var sb strings.Builder
	var current []rune

	flush := func() {
		if len(current) >= minRunLength {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(string(current))
		}
		current = current[:0]
	}

	for _, b := range content {
		r := rune(b)
		if r == '\n' || r == '\t' || (unicode.IsPrint(r) && r < unicode.MaxASCII) {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: no recoverable text", domain.ErrDecodeFailure)
	}
	return out, nil
}
