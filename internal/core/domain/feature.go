package domain

// Feature identifies one conversion kind. It is the routing key the
// dispatcher uses to select a strategy.
type Feature string

const (
	// FeatureImagesToPDF places each raster image on its own page.
	FeatureImagesToPDF Feature = "images-to-pdf"
	// FeatureTextToPDF reflows plain text documents into pages.
	FeatureTextToPDF Feature = "text-to-pdf"
	// FeatureWordToPDF recovers text from Word documents, best effort.
	FeatureWordToPDF Feature = "word-to-pdf"
	// FeatureMergePDF concatenates the pages of several PDFs.
	FeatureMergePDF Feature = "merge-pdf"
	// FeatureSplitPDF re-paginates one PDF with page-number stamps.
	FeatureSplitPDF Feature = "split-pdf"
	// FeaturePDFToText extracts text from a PDF and re-renders it.
	FeaturePDFToText Feature = "pdf-to-text"
	// FeatureCompressPDF rewrites a PDF through an optimisation pass.
	FeatureCompressPDF Feature = "compress-pdf"

	// Catalog entries without a real strategy yet. They route to the
	// placeholder strategy rather than failing.

	// FeatureExcelToPDF is not implemented.
	FeatureExcelToPDF Feature = "excel-to-pdf"
	// FeaturePowerPointToPDF is not implemented.
	FeaturePowerPointToPDF Feature = "ppt-to-pdf"
	// FeaturePDFToWord is not implemented.
	FeaturePDFToWord Feature = "pdf-to-word"
)

// FeatureInfo describes a catalog entry for display.
type FeatureInfo struct {
	// ID is the routing key.
	ID Feature
	// Title is the human-readable display name.
	Title string
	// Description provides a brief explanation of the conversion.
	Description string
	// Available is false for catalog entries served by the placeholder.
	Available bool
}

// Features returns the full conversion catalog in display order.
func Features() []FeatureInfo {
	return []FeatureInfo{
		{FeatureImagesToPDF, "Images to PDF", "Combine JPG, PNG, GIF, BMP, TIFF or WebP images into one PDF, one image per page", true},
		{FeatureTextToPDF, "Text to PDF", "Render plain text files as paginated PDF documents", true},
		{FeatureWordToPDF, "Word to PDF", "Recover text from Word documents and render it as PDF (best effort)", true},
		{FeatureMergePDF, "Merge PDF", "Concatenate the pages of several PDFs into one document", true},
		{FeatureSplitPDF, "Split PDF", "Re-paginate one PDF with a page-number stamp on every page", true},
		{FeaturePDFToText, "PDF to Text", "Extract plain text from a PDF and re-render it as a fresh document", true},
		{FeatureCompressPDF, "Compress PDF", "Rewrite a PDF through an optimisation pass to reduce its size", true},
		{FeatureExcelToPDF, "Excel to PDF", "Coming soon", false},
		{FeaturePowerPointToPDF, "PowerPoint to PDF", "Coming soon", false},
		{FeaturePDFToWord, "PDF to Word", "Coming soon", false},
	}
}

// FeatureByID looks up a catalog entry. The boolean is false for
// feature IDs outside the catalog.
func FeatureByID(id Feature) (FeatureInfo, bool) {
	for _, f := range Features() {
		if f.ID == id {
			return f, true
		}
	}
	return FeatureInfo{}, false
}
