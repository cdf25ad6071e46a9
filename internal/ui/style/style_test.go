package style_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqlock/internal/ui/style"
)

func TestDiffLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		wantCol  lipgloss.Color
		wantBold bool
		wantOK   bool
	}{
		{"--- pkgA/requirements-lock.txt (committed)", style.Muted, true, true},
		{"+++ pkgA/requirements.txt (resolved)", style.Muted, true, true},
		{"@@ -1,2 +1,2 @@", style.Heading, false, true},
		{"-requests==2.31.0", style.Committed, false, true},
		{"+requests==2.32.3", style.Resolved, false, true},
		{" certifi==2024.2.2", "", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		c, bold, ok := style.DiffLine(tt.line)
		assert.Equal(t, tt.wantCol, c, tt.line)
		assert.Equal(t, tt.wantBold, bold, tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
	}
}

func TestPaint(t *testing.T) {
	t.Parallel()

	t.Run("plain profile leaves text unchanged", func(t *testing.T) {
		t.Parallel()
		out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
		assert.Equal(t, style.Check, style.Paint(out, style.Check, style.Green, true))
	})

	t.Run("color profile adds escapes", func(t *testing.T) {
		t.Parallel()
		out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
		got := style.Paint(out, style.Cross, style.Red, false)
		assert.Contains(t, got, style.Cross)
		assert.Contains(t, got, "\x1b[")
	})

	t.Run("nil output", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x", style.Paint(nil, "x", style.Iris, true))
	})
}
