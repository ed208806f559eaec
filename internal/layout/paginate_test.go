package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charWidth measures each rune as one unit, so maxWidth doubles as a
// column count in these tests.
func charWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestTruncate_ShortTextUnchanged(t *testing.T) {
	text := "hello world"
	out, truncated := Truncate(text)
	assert.Equal(t, text, out)
	assert.False(t, truncated)
}

func TestTruncate_CapsLongText(t *testing.T) {
	text := strings.Repeat("a", MaxTextLength+100)
	out, truncated := Truncate(text)

	assert.True(t, truncated)
	assert.True(t, strings.HasSuffix(out, TruncationMarker))
	assert.Len(t, out, MaxTextLength+len(TruncationMarker))
}

func TestTruncate_ExactLimitUnchanged(t *testing.T) {
	text := strings.Repeat("a", MaxTextLength)
	out, truncated := Truncate(text)
	assert.Equal(t, text, out)
	assert.False(t, truncated)
}

func TestTruncate_MultibyteSafe(t *testing.T) {
	// More bytes than the cap but fewer runes: must not be cut.
	text := strings.Repeat("é", MaxTextLength-1)
	out, truncated := Truncate(text)
	assert.Equal(t, text, out)
	assert.False(t, truncated)

	// More runes than the cap: cut at a rune boundary.
	text = strings.Repeat("é", MaxTextLength+10)
	out, truncated = Truncate(text)
	assert.True(t, truncated)
	prefix := strings.TrimSuffix(out, TruncationMarker)
	assert.Len(t, []rune(prefix), MaxTextLength)
}

func TestWrapText_BreaksAtWhitespace(t *testing.T) {
	lines := WrapText("the quick brown fox", 9, charWidth)

	assert.Equal(t, []string{"the quick", "brown fox"}, lines)
}

func TestWrapText_PreservesParagraphs(t *testing.T) {
	lines := WrapText("first\n\nsecond", 100, charWidth)

	assert.Equal(t, []string{"first", "", "second"}, lines)
}

func TestWrapText_NormalisesLineEndings(t *testing.T) {
	lines := WrapText("one\r\ntwo\rthree", 100, charWidth)

	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestWrapText_HardBreaksOversizedToken(t *testing.T) {
	lines := WrapText("abcdefghij", 4, charWidth)

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
}

func TestWrapText_OversizedTokenMidLine(t *testing.T) {
	lines := WrapText("hi abcdefghij bye", 4, charWidth)

	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, charWidth(line), 4.0)
	}
	// No content lost.
	assert.Equal(t, "hiabcdefghijbye", strings.ReplaceAll(strings.Join(lines, ""), " ", ""))
}

func TestWrapText_EmptyYieldsOneEmptyLine(t *testing.T) {
	assert.Equal(t, []string{""}, WrapText("", 100, charWidth))
}

func TestWrapText_RoundTripPreservesWords(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"
	lines := WrapText(text, 12, charWidth)

	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestPackPage_TakesWhatFits(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	page, rest := PackPage(lines, 14, 42)
	assert.Equal(t, []string{"a", "b", "c"}, page)
	assert.Equal(t, []string{"d", "e"}, rest)
}

func TestPackPage_AllFit(t *testing.T) {
	lines := []string{"a", "b"}

	page, rest := PackPage(lines, 14, 1000)
	assert.Equal(t, lines, page)
	assert.Nil(t, rest)
}

func TestPackPage_AlwaysProgresses(t *testing.T) {
	// Degenerate height still takes one line per page.
	page, rest := PackPage([]string{"a", "b"}, 14, 5)
	assert.Equal(t, []string{"a"}, page)
	assert.Equal(t, []string{"b"}, rest)
}

func TestPaginate_EmptyYieldsOnePage(t *testing.T) {
	pages := Paginate(nil, 14, 800)

	require.Len(t, pages, 1)
	assert.Equal(t, []string{""}, pages[0])
}

func TestPaginate_SplitsAcrossPages(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "line")
	}

	pages := Paginate(lines, 14, 56) // 4 lines per page

	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 4)
	assert.Len(t, pages[1], 4)
	assert.Len(t, pages[2], 2)
}

func TestPaginate_PreservesOrder(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5"}
	pages := Paginate(lines, 14, 28)

	var flat []string
	for _, page := range pages {
		flat = append(flat, page...)
	}
	assert.Equal(t, lines, flat)
}

func TestPaginateText_Pipeline(t *testing.T) {
	text := "aaaa bbbb cccc dddd"
	pages := PaginateText(text, 9, 14, 14, charWidth)

	// Two words per line, one line per page.
	require.Len(t, pages, 2)
	assert.Equal(t, []string{"aaaa bbbb"}, pages[0])
	assert.Equal(t, []string{"cccc dddd"}, pages[1])
}

func TestPaginateText_AppliesTruncation(t *testing.T) {
	text := strings.Repeat("a", MaxTextLength+500)
	pages := PaginateText(text, 100, 14, 800, charWidth)

	last := pages[len(pages)-1]
	joined := strings.Join(last, "")
	assert.Contains(t, joined, strings.TrimSpace(TruncationMarker))
}
