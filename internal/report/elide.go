package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "..."

// VisibleWidth returns the terminal display width of s.
func VisibleWidth(s string) int {
	g := uniseg.NewGraphemes(s)
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// ElidePath shortens p to at most width display columns by replacing
// its middle with "...", keeping the leading directories and the file
// name readable. Graphemes are never split. A width of zero or less
// disables elision.
func ElidePath(p string, width int) string {
	if width <= 0 || VisibleWidth(p) <= width {
		return p
	}
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}

	var segs []string
	var widths []int
	g := uniseg.NewGraphemes(p)
	for g.Next() {
		segs = append(segs, g.Str())
		widths = append(widths, runewidth.StringWidth(g.Str()))
	}

	budget := width - len(ellipsis)
	headW := (budget + 1) / 2
	tailW := budget - headW

	var head strings.Builder
	used, i := 0, 0
	for ; i < len(segs) && used+widths[i] <= headW; i++ {
		head.WriteString(segs[i])
		used += widths[i]
	}

	// The full path is wider than width, so head and tail never meet.
	j := len(segs)
	used = 0
	for j > i && used+widths[j-1] <= tailW {
		j--
		used += widths[j]
	}

	return head.String() + ellipsis + strings.Join(segs[j:], "")
}
