package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = ".reqlock.yaml"

	// ConfigVersion is the only supported configuration schema version.
	ConfigVersion = "1"

	// DefaultResolverCommand is the resolution engine executable.
	DefaultResolverCommand = "pip-compile"

	// DefaultTestRunnerCommand is the coverage test runner executable.
	DefaultTestRunnerCommand = "pytest"

	// DefaultMinCoverage is the coverage threshold used when none is given.
	DefaultMinCoverage = 50

	// PrivateFilePerm is the default permission for files written by tests (rw-------).
	PrivateFilePerm = 0o600
)
