package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Config is the project configuration read from ConfigFileName.
type Config struct {
	Version    string
	Resolver   ResolverConfig
	Check      CheckConfig
	TestRunner TestRunnerConfig
}

// ResolverConfig configures the resolution engine invocation.
type ResolverConfig struct {
	// Command is the argv prefix used to invoke the engine.
	Command []string
	// Args are extra arguments inserted before the generated ones.
	Args []string
	// Env holds extra environment variables for the engine.
	Env map[string]string
}

// CheckConfig configures verification.
type CheckConfig struct {
	// SortDirectories iterates directories in lexical order instead of input order.
	SortDirectories bool
}

// TestRunnerConfig configures the coverage test runner.
type TestRunnerConfig struct {
	Command []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Resolver: ResolverConfig{
			Command: []string{DefaultResolverCommand},
		},
		TestRunner: TestRunnerConfig{
			Command: []string{DefaultTestRunnerCommand},
		},
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Resolver.Command = slices.Clone(c.Resolver.Command)
	out.Resolver.Args = slices.Clone(c.Resolver.Args)
	out.Resolver.Env = maps.Clone(c.Resolver.Env)
	out.TestRunner.Command = slices.Clone(c.TestRunner.Command)
	return &out
}

// Validate reports unusable configuration values.
func (c *Config) Validate() error {
	if c.Version != ConfigVersion {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unsupported config version"), "version", c.Version)
	}
	if len(c.Resolver.Command) == 0 || c.Resolver.Command[0] == "" {
		return zerr.Wrap(ErrInvalidConfig, "resolver.command must not be empty")
	}
	if len(c.TestRunner.Command) == 0 || c.TestRunner.Command[0] == "" {
		return zerr.Wrap(ErrInvalidConfig, "testRunner.command must not be empty")
	}
	return nil
}
