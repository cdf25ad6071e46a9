package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DryRunTrailer is the summary line pip-compile appends after the manifest in dry-run
// mode. It is not part of the manifest.
const DryRunTrailer = "Dry-run, so nothing updated."

// Manifest is a resolved dependency set as an ordered sequence of text lines.
type Manifest []string

// ParseManifest splits text into lines. Both "\n" and "\r\n" terminate a line and a
// final terminator does not produce an empty trailing line.
func ParseManifest(text string) Manifest {
	if text == "" {
		return Manifest{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Manifest(lines)
}

// StripTrailer drops the single trailing line a dry-run resolution appends.
func (m Manifest) StripTrailer() Manifest {
	if len(m) == 0 {
		return m
	}
	return m[:len(m)-1]
}

// Equal reports whether two manifests have identical line sequences.
func (m Manifest) Equal(other Manifest) bool {
	return slices.Equal(m, other)
}

// Text renders the manifest with a newline after every line.
func (m Manifest) Text() string {
	if len(m) == 0 {
		return ""
	}
	return strings.Join(m, "\n") + "\n"
}

// Digest returns a short content fingerprint of the rendered manifest.
func (m Manifest) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(m.Text()))
}
