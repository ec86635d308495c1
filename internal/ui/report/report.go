// Package report renders the end-of-run summary: which targets produced
// bundles, which failed, and where the generated manifest lives.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/xcpack/xcpack/internal/ui/style"
)

// Summary is the user-facing outcome of one run.
type Summary struct {
	Built       map[string]string
	Failed      map[string]error
	ManifestOut string
}

// Renderer writes summaries to a terminal-aware writer.
type Renderer struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	dim     lipgloss.Style
}

// NewRenderer creates a Renderer for w. NO_COLOR disables styling.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:     w,
		success: r.NewStyle().Foreground(style.Green),
		failure: r.NewStyle().Foreground(style.Red),
		dim:     r.NewStyle().Foreground(style.Slate),
	}
}

// Render prints the summary, built targets first, then failures.
func (r *Renderer) Render(s Summary) {
	for _, name := range sortedKeys(s.Built) {
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.success.Render(style.Check), name, r.dim.Render(s.Built[name]))
	}
	for _, name := range sortedFailures(s.Failed) {
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.failure.Render(style.Cross), name, r.dim.Render(s.Failed[name].Error()))
	}
	if s.ManifestOut != "" {
		fmt.Fprintf(r.out, "%s manifest written to %s\n",
			r.dim.Render(style.Dot), s.ManifestOut)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFailures(m map[string]error) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
