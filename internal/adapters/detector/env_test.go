package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqlock/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		tty      bool
		env      map[string]string
		expected detector.ColorMode
	}{
		{name: "terminal", tty: true, expected: detector.ModeColor},
		{name: "not a terminal", tty: false, expected: detector.ModePlain},
		{name: "NO_COLOR wins", tty: true, env: map[string]string{"NO_COLOR": "1"}, expected: detector.ModePlain},
		{name: "dumb terminal", tty: true, env: map[string]string{"TERM": "dumb"}, expected: detector.ModePlain},
		{name: "CI=true", tty: true, env: map[string]string{"CI": "true"}, expected: detector.ModePlain},
		{name: "CI=1", tty: true, env: map[string]string{"CI": "1"}, expected: detector.ModePlain},
		{name: "CI=false", tty: true, env: map[string]string{"CI": "false"}, expected: detector.ModeColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := detector.Detect(
				func() bool { return tt.tty },
				func(k string) string { return tt.env[k] },
			)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestDetectEnvironment_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag     string
		auto     detector.ColorMode
		expected detector.ColorMode
	}{
		{flag: "always", auto: detector.ModePlain, expected: detector.ModeColor},
		{flag: "never", auto: detector.ModeColor, expected: detector.ModePlain},
		{flag: "auto", auto: detector.ModeColor, expected: detector.ModeColor},
		{flag: "", auto: detector.ModePlain, expected: detector.ModePlain},
		{flag: "bogus", auto: detector.ModeColor, expected: detector.ModeColor},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}

func TestColorMode_Enabled(t *testing.T) {
	assert.True(t, detector.ModeColor.Enabled())
	assert.False(t, detector.ModePlain.Enabled())
	assert.False(t, detector.ModeAuto.Enabled())
}
