// Package report renders lock drift diagnostics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/ui/output"
	"go.trai.ch/reqlock/internal/ui/style"
	"go.trai.ch/zerr"
)

const diffContext = 3

// Reporter implements ports.DriftReporter. It prints the committed lock, the fresh
// resolution and a unified diff between them, in that order.
type Reporter struct {
	out *termenv.Output
}

var _ ports.DriftReporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to w with the given color profile selector.
func NewReporter(w io.Writer, profileFn func() termenv.Profile) *Reporter {
	return &Reporter{out: output.NewWithProfile(w, profileFn)}
}

// ReportDrift writes the drift report.
func (r *Reporter) ReportDrift(drift *domain.DriftError) error {
	var b strings.Builder

	b.WriteString(r.styled(style.Cross+" "+drift.Dir+": "+domain.ErrLockDrift.Error(), style.Committed, true))
	b.WriteString("\n\n")

	r.writeBlock(&b, "committed", drift.LockPath, drift.Committed)
	b.WriteString("\n")
	r.writeBlock(&b, "resolved", drift.Declaration, drift.Resolved)

	diff, err := unifiedDiff(drift)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render diff"), "dir", drift.Dir)
	}
	if diff != "" {
		b.WriteString("\n")
		r.writeDiff(&b, diff)
	}

	if _, err := r.out.WriteString(b.String()); err != nil {
		return zerr.Wrap(err, "failed to write drift report")
	}
	return nil
}

func (r *Reporter) writeBlock(b *strings.Builder, label, path string, m domain.Manifest) {
	header := fmt.Sprintf("%s (%s)", label, path)
	b.WriteString(r.styled(header, style.Heading, true))
	b.WriteString(" ")
	b.WriteString(r.styled("xxh64:"+m.Digest(), style.Muted, false))
	b.WriteString("\n")

	if len(m) == 0 {
		b.WriteString(r.styled("  (empty)", style.Muted, false))
		b.WriteString("\n")
		return
	}
	for _, line := range m {
		b.WriteString("  " + line + "\n")
	}
}

func (r *Reporter) writeDiff(b *strings.Builder, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		if c, bold, ok := style.DiffLine(text); ok {
			b.WriteString(r.styled(text, c, bold))
		} else {
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
}

func (r *Reporter) styled(s string, color lipgloss.Color, bold bool) string {
	return style.Paint(r.out, s, color, bold)
}

func unifiedDiff(drift *domain.DriftError) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        diffLines(drift.Committed),
		B:        diffLines(drift.Resolved),
		FromFile: drift.LockPath + " (committed)",
		ToFile:   drift.Declaration + " (resolved)",
		Context:  diffContext,
	})
}

func diffLines(m domain.Manifest) []string {
	lines := make([]string, len(m))
	for i, line := range m {
		lines[i] = line + "\n"
	}
	return lines
}
