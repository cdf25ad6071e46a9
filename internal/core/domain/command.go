package domain

// Command describes an external process invocation.
type Command struct {
	// Args is the argv, starting with the executable.
	Args []string
	// Env holds extra environment variables layered over the inherited environment.
	Env map[string]string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// CompileRequest describes one invocation of the resolution engine.
type CompileRequest struct {
	// Declaration is the declaration file to resolve.
	Declaration string
	// Output is the lock file path the engine writes to (or would write to in dry-run mode).
	Output string
	// GenerateHashes asks for per-package integrity hashes.
	GenerateHashes bool
	// DryRun emits the manifest to the diagnostic stream instead of writing Output.
	DryRun bool
}

// LockOptions holds the options for one lock run.
type LockOptions struct {
	GenerateHashes bool
	CheckOnly      bool
}

// CoverageOptions holds the options for one coverage test run.
type CoverageOptions struct {
	SrcPath     string
	TestPaths   []string
	MinCoverage int
}
