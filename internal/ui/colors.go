package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "#7D56F4"

var styles = NewPalette(defaultAccent, "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
	muted  lipgloss.Style
	tab    lipgloss.Style
	active lipgloss.Style
	user   lipgloss.Style
	panel  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:  NewBold(t).MarginBottom(1),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewStyle(w),
		help:   NewEm(h),
		muted:  NewStyle(h),
		tab:    NewStyle(h).Padding(0, 1),
		active: NewBold("#FFFFFF").Background(lipgloss.Color(t)).Padding(0, 1),
		user:   NewBold(t),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t)).Padding(0, 1),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// accent returns a bordered box in a course's accent colour, falling back to the palette accent.
func accent(color string) lipgloss.Style {
	if color == "" {
		color = defaultAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1)
}
