package formatter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for a terminal of the given width. Rendering failures fall back to the source text.
func RenderMarkdown(md string, width int) string {
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
