// Package style holds the colors and icons reqlock uses in drift reports,
// progress lines and log output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Roles.
var (
	// Heading marks block headers and diff hunk headers.
	Heading = Iris
	// Muted marks digests, diff file headers and empty-manifest markers.
	Muted = Slate
	// Committed marks lines present only in the committed lock.
	Committed = Red
	// Resolved marks lines present only in the fresh resolution.
	Resolved = Green
)

// Icons.
const (
	Check   = "✓" // lock up to date, task completed
	Cross   = "✗" // drift, failure
	Warning = "!"
	Dot     = "●"
)

// Paint renders s in color c on out. A nil out returns s unchanged.
func Paint(out *termenv.Output, s string, c lipgloss.Color, bold bool) string {
	if out == nil {
		return s
	}
	st := out.String(s).Foreground(out.Color(string(c)))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

// DiffLine picks the styling for one line of a unified diff between a
// committed lock and its resolution. ok is false for context lines.
func DiffLine(line string) (c lipgloss.Color, bold, ok bool) {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return Muted, true, true
	case strings.HasPrefix(line, "@@"):
		return Heading, false, true
	case strings.HasPrefix(line, "-"):
		return Committed, false, true
	case strings.HasPrefix(line, "+"):
		return Resolved, false, true
	default:
		return "", false, false
	}
}
