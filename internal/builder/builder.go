// Package builder implements the stateful page builder that
// accumulates one output document per conversion call.
//
// The builder wraps gofpdf for page construction and gofpdi for
// byte-level page copies from existing PDFs. All drawable geometry
// comes from the layout package; strategies never touch gofpdf
// directly.
package builder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/layout"
)

// State tracks the builder's lifecycle.
type State int

const (
	// StateEmpty means no page has been created yet.
	StateEmpty State = iota
	// StateBuilding means at least one page exists and drawing is legal.
	StateBuilding
	// StateFinalized means the document has been serialised; every
	// further operation is an ErrIllegalState.
	StateFinalized
)

const (
	bodyFont    = "Helvetica"
	captionSize = 8.0
	stampSize   = 9.0
)

// Builder accumulates pages for one output document. It is exclusively
// owned by the single in-flight conversion call; no locking is needed
// because there is no concurrent mutation.
//
// Page order in the output equals page insertion order. The builder
// never reorders; ordering is the strategy's responsibility.
type Builder struct {
	doc    *gofpdf.Fpdf
	geo    layout.Geometry
	state  State
	pages  int
	images int
}

// New creates a builder for pages of the given geometry.
func New(geo layout.Geometry) *Builder {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: geo.PageWidth, Ht: geo.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(bodyFont, "", 12)
	return &Builder{doc: doc, geo: geo}
}

// Geometry returns the page geometry the builder draws against.
func (b *Builder) Geometry() layout.Geometry {
	return b.geo
}

// State returns the current lifecycle state.
func (b *Builder) State() State {
	return b.state
}

// PageCount returns the number of pages created so far.
func (b *Builder) PageCount() int {
	return b.pages
}

// StringWidth measures text in the body font at the given size.
// Usable in any non-finalized state; it performs no drawing.
func (b *Builder) StringWidth(s string, size float64) float64 {
	b.doc.SetFont(bodyFont, "", size)
	return b.doc.GetStringWidth(s)
}

// BeginPage appends a new page and makes it current.
func (b *Builder) BeginPage() error {
	if b.state == StateFinalized {
		return fmt.Errorf("%w: begin page after finalize", domain.ErrIllegalState)
	}
	b.doc.AddPageFormat("P", gofpdf.SizeType{Wd: b.geo.PageWidth, Ht: b.geo.PageHeight})
	b.pages++
	b.state = StateBuilding
	return nil
}

// ensurePage lazily creates the first page. Callers ask for "the
// current page"; creating it on first need avoids an orphan blank
// leading page.
func (b *Builder) ensurePage() error {
	if b.state == StateFinalized {
		return fmt.Errorf("%w: draw after finalize", domain.ErrIllegalState)
	}
	if b.state == StateEmpty {
		return b.BeginPage()
	}
	return nil
}

// DrawImage places pre-encoded JPEG bytes at the computed placement
// on the current page.
func (b *Builder) DrawImage(p layout.Placement, jpegData []byte) error {
	if err := b.ensurePage(); err != nil {
		return err
	}
	b.images++
	name := fmt.Sprintf("img-%d", b.images)
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	b.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpegData))
	b.doc.ImageOptions(name, p.X, p.Y, p.Width, p.Height, false, opts, 0, "")
	return b.err()
}

// DrawText renders lines top-down from (x, y) at the given font size
// and line height.
func (b *Builder) DrawText(lines []string, x, y, size, lineHeight float64) error {
	if err := b.ensurePage(); err != nil {
		return err
	}
	b.doc.SetFont(bodyFont, "", size)
	b.doc.SetTextColor(0, 0, 0)
	for i, line := range lines {
		// Text positions by baseline; offset one line height down.
		b.doc.Text(x, y+float64(i+1)*lineHeight, line)
	}
	return b.err()
}

// DrawCaption writes small grey text at the fixed footer position.
func (b *Builder) DrawCaption(text string) error {
	if err := b.ensurePage(); err != nil {
		return err
	}
	b.doc.SetFont(bodyFont, "", captionSize)
	b.doc.SetTextColor(120, 120, 120)
	width := b.doc.GetStringWidth(text)
	x := (b.geo.PageWidth - width) / 2
	b.doc.Text(x, b.geo.PageHeight-b.geo.Margin/2, text)
	b.doc.SetTextColor(0, 0, 0)
	return b.err()
}

// DrawRule draws a horizontal line across the drawable width at y.
func (b *Builder) DrawRule(y float64) error {
	if err := b.ensurePage(); err != nil {
		return err
	}
	b.doc.SetDrawColor(160, 160, 160)
	b.doc.SetLineWidth(0.5)
	b.doc.Line(b.geo.Margin, y, b.geo.PageWidth-b.geo.Margin, y)
	return b.err()
}

// StampPageNumber writes a "page index of total" marker at the fixed
// bottom-centre position of the current page.
func (b *Builder) StampPageNumber(index, total int) error {
	if err := b.ensurePage(); err != nil {
		return err
	}
	b.doc.SetFont(bodyFont, "", stampSize)
	b.doc.SetTextColor(80, 80, 80)
	stamp := fmt.Sprintf("page %d of %d", index, total)
	width := b.doc.GetStringWidth(stamp)
	b.doc.Text((b.geo.PageWidth-width)/2, b.geo.PageHeight-12, stamp)
	b.doc.SetTextColor(0, 0, 0)
	return b.err()
}

// Source is an opened PDF whose pages can be copied into the builder.
type Source struct {
	b     *Builder
	imp   *gofpdi.Importer
	rs    io.ReadSeeker
	pages int
}

// OpenSource parses src for page copying. Corrupt input returns a
// DecodeFailure so strategies can skip the item and continue.
func (b *Builder) OpenSource(src []byte) (*Source, error) {
	if b.state == StateFinalized {
		return nil, fmt.Errorf("%w: open source after finalize", domain.ErrIllegalState)
	}
	count, err := api.PageCount(bytes.NewReader(src), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: document has no pages", domain.ErrDecodeFailure)
	}
	return &Source{
		b:     b,
		imp:   gofpdi.NewImporter(),
		rs:    bytes.NewReader(src),
		pages: count,
	}, nil
}

// PageCount returns the number of pages in the source document.
func (s *Source) PageCount() int {
	return s.pages
}

// CopyPage appends a new page sized like source page pageNum (1-based)
// and copies that page's content onto it without re-rendering.
func (s *Source) CopyPage(pageNum int) (err error) {
	if s.b.state == StateFinalized {
		return fmt.Errorf("%w: copy page after finalize", domain.ErrIllegalState)
	}
	if pageNum < 1 || pageNum > s.pages {
		return fmt.Errorf("%w: page %d of %d", domain.ErrInvalidInput, pageNum, s.pages)
	}

	// gofpdi panics rather than returning errors on structures the
	// page-count preflight does not reject, encrypted content streams
	// among them. Strategies treat the page as undecodable and skip.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: copying page %d: %v", domain.ErrDecodeFailure, pageNum, r)
		}
	}()

	tpl := s.imp.ImportPageFromStream(s.b.doc, &s.rs, pageNum, "/MediaBox")

	w, h := s.b.geo.PageWidth, s.b.geo.PageHeight
	if sizes := s.imp.GetPageSizes(); sizes != nil {
		if box, ok := sizes[pageNum]["/MediaBox"]; ok && box["w"] > 0 && box["h"] > 0 {
			w, h = box["w"], box["h"]
		}
	}

	s.b.doc.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	s.b.pages++
	s.b.state = StateBuilding
	s.imp.UseImportedTemplate(s.b.doc, tpl, 0, 0, w, h)
	return s.b.err()
}

// Finalize serialises all pages and returns the document bytes.
// A builder that never produced a page emits a single blank page so
// the output is always a well-formed PDF. Calling Finalize twice is
// an ErrIllegalState.
func (b *Builder) Finalize() ([]byte, error) {
	if b.state == StateFinalized {
		return nil, fmt.Errorf("%w: finalize called twice", domain.ErrIllegalState)
	}
	if b.state == StateEmpty {
		if err := b.BeginPage(); err != nil {
			return nil, err
		}
	}
	b.state = StateFinalized

	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialising document: %w", err)
	}
	return buf.Bytes(), nil
}

// err surfaces gofpdf's sticky error state.
func (b *Builder) err() error {
	if b.doc.Err() {
		return fmt.Errorf("drawing failed: %w", b.doc.Error())
	}
	return nil
}
