// Package detector provides environment detection for color output.
package detector

import (
	"os"

	"golang.org/x/term"
)

// ColorMode represents whether output is colored.
type ColorMode int

const (
	// ModeAuto leaves the decision to the environment.
	ModeAuto ColorMode = iota
	// ModeColor forces colored output.
	ModeColor
	// ModePlain forces plain output.
	ModePlain
)

// Enabled reports whether m produces colored output. ModeAuto reports false.
func (m ColorMode) Enabled() bool {
	return m == ModeColor
}

// DetectEnvironment returns the color mode suited to stderr.
// Color is used only on a terminal, never with NO_COLOR set, TERM=dumb or in CI.
func DetectEnvironment() ColorMode {
	return detect(func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }, os.Getenv)
}

func detect(isTTY func() bool, getenv func(string) string) ColorMode {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return ModePlain
	}

	ci := getenv("CI")
	if ci == "true" || ci == "1" {
		return ModePlain
	}

	if !isTTY() {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user's --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
