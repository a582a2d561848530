// Package format turns domain records into styled text. A Text can be
// printed flat (Plain, Render) or consumed line by line by the terminal UI.
package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Style struct {
	Color     lipgloss.Color // empty for the terminal default
	Bold      bool
	Underline bool
}

func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold).Underline(s.Underline)
	if s.Color != "" {
		st = st.Foreground(s.Color)
	}
	return st
}

type Fragment struct {
	Text  string
	Style Style
}

type Line []Fragment

type Text []Line

// Formatter is implemented by every displayable record.
type Formatter interface {
	Format() Text
}

func (l Line) Plain() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Text)
	}
	return b.String()
}

func (l Line) Render() string {
	var b strings.Builder
	for _, f := range l {
		if f.Style == (Style{}) {
			b.WriteString(f.Text)
			continue
		}
		b.WriteString(f.Style.Lipgloss().Render(f.Text))
	}
	return b.String()
}

func (t Text) Plain() string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.Plain()
	}
	return strings.Join(lines, "\n")
}

func (t Text) Render() string {
	lines := make([]string, len(t))
	for i, l := range t {
		lines[i] = l.Render()
	}
	return strings.Join(lines, "\n")
}

// Join concatenates formatted records, separated by a blank line.
func Join(fs ...Formatter) Text {
	var out Text
	for i, f := range fs {
		if i > 0 {
			out = append(out, Line{})
		}
		out = append(out, f.Format()...)
	}
	return out
}

func NoData() Text {
	return Text{{frag("no data", Style{Color: ColorMuted})}}
}

func frag(text string, style Style) Fragment {
	return Fragment{Text: text, Style: style}
}

func plain(text string) Fragment {
	return Fragment{Text: text}
}
