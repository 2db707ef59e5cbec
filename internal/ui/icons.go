package ui

import (
	"fmt"
	"html/template"
)

// IconSize is the rendered width and height of every icon, in pixels.
const IconSize = 16

// Icon names a fixed-size vector glyph. Tone is an optional color class.
type Icon struct {
	Name string
	Tone string
}

type glyph struct {
	svg      string
	terminal string
}

var glyphs = map[string]glyph{
	"message-circle": {
		svg:      `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
		terminal: "◉",
	},
	"message-square": {
		svg:      `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
		terminal: "✉",
	},
	"phone": {
		svg:      `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`,
		terminal: "☎",
	},
	"alert-circle": {
		svg:      `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`,
		terminal: "!",
	},
	"eye": {
		svg:      `<path d="M2 12s3-7 10-7 10 7 10 7-3 7-10 7-10-7-10-7Z"/><circle cx="12" cy="12" r="3"/>`,
		terminal: "◎",
	},
	"image": {
		svg:      `<rect width="18" height="18" x="3" y="3" rx="2"/><circle cx="9" cy="9" r="2"/><path d="m21 15-3.1-3.1a2 2 0 0 0-2.8 0L6 21"/>`,
		terminal: "▣",
	},
}

// SVG returns the inline svg markup. Unknown names render an empty frame.
func (i Icon) SVG() template.HTML {
	g := glyphs[i.Name]
	class := "icon"
	if i.Tone != "" {
		class += " " + template.HTMLEscapeString(i.Tone)
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="%s" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		class, IconSize, IconSize, g.svg))
}

// Terminal returns a single-cell stand-in for text renderers.
func (i Icon) Terminal() string {
	if g, ok := glyphs[i.Name]; ok {
		return g.terminal
	}
	return "•"
}
