// Package style provides shared UI styling primitives for the CLI report.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
	Dot   = "●"
)
