package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/rocket/pkg/parts"
	"github.com/matzehuels/rocket/pkg/rocket"
)

// Option configures text rendering.
type Option func(*textRenderer)

type textRenderer struct {
	fill bool
}

// WithFill pads every row on the right so that each emitted row is exactly
// as wide as the rocket.
func WithFill() Option {
	return func(r *textRenderer) { r.fill = true }
}

// Text renders r as centered multi-line text. Every row, including the
// last, ends with "\n".
func Text(r *rocket.Rocket, opts ...Option) string {
	return Sections(r.Sections(), opts...)
}

// Sections renders an ordered list of parts, top to bottom.
func Sections(sections []*parts.Part, opts ...Option) string {
	var tr textRenderer
	for _, opt := range opts {
		opt(&tr)
	}

	width := Width(sections)
	var b strings.Builder
	for _, p := range sections {
		for _, row := range p.Rows() {
			rw := lipgloss.Width(row)
			pad := Padding(width, rw)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(row)
			if tr.fill {
				b.WriteString(strings.Repeat(" ", width-pad-rw))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Width returns the printed width of the widest row across all parts.
func Width(sections []*parts.Part) int {
	width := 0
	for _, p := range sections {
		for _, row := range p.Rows() {
			width = max(width, lipgloss.Width(row))
		}
	}
	return width
}

// Padding returns the left padding that centers a rowWidth-wide row in a
// width-wide rocket: half the difference, rounded up.
func Padding(width, rowWidth int) int {
	if rowWidth >= width {
		return 0
	}
	return (width - rowWidth + 1) / 2
}
