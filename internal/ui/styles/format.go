package styles

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TruncateString truncates s to fit within maxWidth cells, adding an ellipsis
// when it had to cut. Grapheme clusters are never split.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var b strings.Builder
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		w := uniseg.StringWidth(cluster)
		if width+w > maxWidth-3 {
			break
		}
		b.WriteString(cluster)
		width += w
	}
	return b.String() + "..."
}

// FormatRating renders a theme rating, or "unrated" when there is none.
func FormatRating(rating *float64) string {
	if rating == nil {
		return "unrated"
	}
	return fmt.Sprintf("★ %.1f", *rating)
}
