package config

// Configfile represents the structure of the .reqlock.yaml file.
type Configfile struct {
	Version    string         `yaml:"version"`
	Resolver   *ResolverDTO   `yaml:"resolver"`
	Check      *CheckDTO      `yaml:"check"`
	TestRunner *TestRunnerDTO `yaml:"testRunner"`
}

// ResolverDTO represents the resolver section.
type ResolverDTO struct {
	Command []string          `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
}

// CheckDTO represents the check section.
type CheckDTO struct {
	SortDirectories *bool `yaml:"sortDirectories"`
}

// TestRunnerDTO represents the testRunner section.
type TestRunnerDTO struct {
	Command []string `yaml:"command"`
}
