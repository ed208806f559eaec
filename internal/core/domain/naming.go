package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// suffixes gives each feature a recognisable output-name tail.
var suffixes = map[Feature]string{
	FeatureMergePDF:    "merged",
	FeatureSplitPDF:    "split",
	FeatureCompressPDF: "compressed",
	FeaturePDFToText:   "text",
}

// DefaultOutputName derives a safe output filename from the first
// item of a batch, e.g. "holiday.jpg" -> "holiday-converted.pdf".
func DefaultOutputName(feature Feature, firstItemName string) string {
	stem := strings.TrimSuffix(filepath.Base(firstItemName), filepath.Ext(firstItemName))
	stem = invalidFilenameChars.ReplaceAllString(strings.TrimSpace(stem), "_")
	stem = strings.Trim(stem, ". ")
	if stem == "" {
		stem = "document"
	}

	suffix, ok := suffixes[feature]
	if !ok {
		suffix = "converted"
	}
	return stem + "-" + suffix + ".pdf"
}
