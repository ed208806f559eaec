package layout

import (
	"fmt"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

// A4 portrait in points (1" = 72pt).
const (
	a4Width  = 595.28
	a4Height = 841.89
)

// Fixed per-strategy margins. These are deliberate constants, not
// configuration: the conversion surface is not externally tunable.
const (
	imageMargin = 10.0
	textMargin  = 20.0
)

// Geometry describes one page's dimensions and margin. It is the
// shared value object every strategy draws against, so page-size and
// margin arithmetic lives in exactly one place.
type Geometry struct {
	// PageWidth and PageHeight are the full page dimensions in points.
	PageWidth  float64
	PageHeight float64

	// Margin applies on all four sides.
	Margin float64
}

// NewGeometry validates and builds a Geometry.
// The page must leave a positive drawable area after margins.
func NewGeometry(pageWidth, pageHeight, margin float64) (Geometry, error) {
	if pageWidth <= 2*margin || pageHeight <= 2*margin {
		return Geometry{}, fmt.Errorf("%w: page %gx%g with margin %g leaves no drawable area",
			domain.ErrInvalidDimensions, pageWidth, pageHeight, margin)
	}
	return Geometry{PageWidth: pageWidth, PageHeight: pageHeight, Margin: margin}, nil
}

// ImagePage returns the fixed A4 portrait geometry used by the image
// strategy.
func ImagePage() Geometry {
	return Geometry{PageWidth: a4Width, PageHeight: a4Height, Margin: imageMargin}
}

// TextPage returns the fixed A4 portrait geometry used by the
// text-rendering strategies.
func TextPage() Geometry {
	return Geometry{PageWidth: a4Width, PageHeight: a4Height, Margin: textMargin}
}

// DrawableWidth is the width remaining after both margins.
func (g Geometry) DrawableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// DrawableHeight is the height remaining after both margins.
func (g Geometry) DrawableHeight() float64 {
	return g.PageHeight - 2*g.Margin
}

// Placement is a computed rectangle for drawing one image: the size
// it renders at and the origin that centres it on the page.
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Fit computes a centred, aspect-ratio-preserving placement for a
// raster of srcWidth x srcHeight pixels within the drawable area.
//
// Exactly one of width/height is clamped to the drawable bound; the
// other follows from the source aspect ratio. Centring is relative to
// the full page, not the drawable area.
func (g Geometry) Fit(srcWidth, srcHeight float64) (Placement, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Placement{}, fmt.Errorf("%w: %gx%g", domain.ErrInvalidDimensions, srcWidth, srcHeight)
	}

	drawW := g.DrawableWidth()
	drawH := g.DrawableHeight()

	srcAspect := srcWidth / srcHeight
	drawAspect := drawW / drawH

	var w, h float64
	if srcAspect > drawAspect {
		// Source is relatively wider than the drawable area.
		w = drawW
		h = w / srcAspect
	} else {
		h = drawH
		w = h * srcAspect
	}

	return Placement{
		X:      (g.PageWidth - w) / 2,
		Y:      (g.PageHeight - h) / 2,
		Width:  w,
		Height: h,
	}, nil
}
