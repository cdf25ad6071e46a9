package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownInput is returned when a path that cannot be classified reaches a stage
	// that assumes classification already happened.
	ErrUnknownInput = zerr.New("unrecognized requirement file")

	// ErrIncompletePair is returned when a directory still lacks a declaration or a lock
	// file after pair completion.
	ErrIncompletePair = zerr.New("incomplete requirement pair")

	// ErrAdapterFailure is returned when the resolution engine terminates abnormally.
	ErrAdapterFailure = zerr.New("dependency resolution failed")

	// ErrLockDrift is returned when a committed lock file differs from a fresh resolution.
	ErrLockDrift = zerr.New("lock file is out of date")

	// ErrLockReadFailed is returned when the committed lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file parses but holds unusable values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCommandNotConfigured is returned when an external command has an empty argv.
	ErrCommandNotConfigured = zerr.New("command not configured")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrTestRunFailed is returned when the coverage test runner exits abnormally.
	ErrTestRunFailed = zerr.New("test run failed")

	// ErrInvalidCoverage is returned when the minimum coverage is outside 0..100.
	ErrInvalidCoverage = zerr.New("minimum coverage must be between 0 and 100")
)
