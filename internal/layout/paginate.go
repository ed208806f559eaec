package layout

import "strings"

// MaxTextLength caps the text a single document may contribute. It
// bounds worst-case pagination cost; longer input is truncated, which
// is a deliberate lossy policy, not an error.
const MaxTextLength = 50000

// TruncationMarker is appended to text cut at MaxTextLength.
const TruncationMarker = " [... truncated]"

// MeasureFunc returns the rendered width of a string in the current
// font. Injecting the metric keeps wrapping pure and testable;
// production passes the PDF string-width function.
type MeasureFunc func(s string) float64

// Truncate enforces MaxTextLength, appending TruncationMarker when
// the text was cut. The second return reports whether truncation
// happened.
func Truncate(text string) (string, bool) {
	if len(text) <= MaxTextLength {
		// Byte length bounds rune length, no need to decode.
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= MaxTextLength {
		return text, false
	}
	return string(runes[:MaxTextLength]) + TruncationMarker, true
}

// WrapText breaks text into lines whose rendered width does not
// exceed maxWidth. Breaks happen at whitespace boundaries when
// possible; a single token wider than maxWidth is hard-broken at
// character boundaries. Paragraph breaks in the input are preserved.
//
// Empty text yields a single empty line, so every document still
// occupies at least one page.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if measure(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			broken := hardBreak(word, maxWidth, measure)
			lines = append(lines, broken[:len(broken)-1]...)
			current = broken[len(broken)-1]
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// hardBreak splits a single oversized token into maximal chunks that
// each fit maxWidth. Always returns at least one chunk.
func hardBreak(token string, maxWidth float64, measure MeasureFunc) []string {
	var chunks []string
	current := ""
	for _, r := range token {
		candidate := current + string(r)
		if current != "" && measure(candidate) > maxWidth {
			chunks = append(chunks, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	chunks = append(chunks, current)
	return chunks
}

// PackPage takes as many leading lines as fit maxHeight at lineHeight
// and returns them with the remainder. At least one line is always
// taken so pagination makes progress even for degenerate heights.
func PackPage(lines []string, lineHeight, maxHeight float64) (page, rest []string) {
	perPage := int(maxHeight / lineHeight)
	if perPage < 1 {
		perPage = 1
	}
	if len(lines) <= perPage {
		return lines, nil
	}
	return lines[:perPage], lines[perPage:]
}

// Paginate greedily packs wrapped lines into pages whose cumulative
// line height does not exceed maxHeight. An empty line slice yields a
// single empty page, never zero pages.
func Paginate(lines []string, lineHeight, maxHeight float64) [][]string {
	if len(lines) == 0 {
		lines = []string{""}
	}
	var pages [][]string
	for len(lines) > 0 {
		var page []string
		page, lines = PackPage(lines, lineHeight, maxHeight)
		pages = append(pages, page)
	}
	return pages
}

// PaginateText is the full text pipeline: truncation cap, word wrap,
// then greedy pagination.
func PaginateText(text string, maxWidth, lineHeight, maxHeight float64, measure MeasureFunc) [][]string {
	text, _ = Truncate(text)
	return Paginate(WrapText(text, maxWidth, measure), lineHeight, maxHeight)
}
