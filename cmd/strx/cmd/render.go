package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// renderer writes command output, styled unless plain is set. Styles are
// bound to the output so that non-terminal writers get no escape codes.
type renderer struct {
	w     io.Writer
	plain bool

	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

func newRenderer(w io.Writer, plain bool) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		w:     w,
		plain: plain,
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		key:   r.NewStyle().Foreground(colorMuted).Width(12),
		value: r.NewStyle().Foreground(colorSecondary),
		muted: r.NewStyle().Foreground(colorMuted).Italic(true),
		err:   r.NewStyle().Foreground(colorError).Bold(true),
	}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Line writes text unstyled.
func (r *renderer) Line(text string) {
	fmt.Fprintln(r.w, text)
}

// Raw writes data unchanged.
func (r *renderer) Raw(data []byte) error {
	_, err := r.w.Write(data)
	return err
}

// Title writes a heading.
func (r *renderer) Title(text string) {
	fmt.Fprintln(r.w, r.style(r.title, text))
}

// Pair writes "key value" with the value highlighted.
func (r *renderer) Pair(key, value string) {
	if r.plain {
		fmt.Fprintf(r.w, "%s\t%s\n", key, value)
		return
	}
	fmt.Fprintln(r.w, r.key.Render(key)+" "+r.value.Render(value))
}

// Note writes secondary information.
func (r *renderer) Note(text string) {
	fmt.Fprintln(r.w, r.style(r.muted, text))
}

// Error writes err as a single line.
func (r *renderer) Error(err error) {
	fmt.Fprintln(r.w, r.style(r.err, "Error: "+err.Error()))
}
