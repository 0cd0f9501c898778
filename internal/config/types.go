package config

// Config is the top-level runner configuration parsed from lint YAML.
type Config struct {
	Lint Lint `yaml:"lint"`
}

// Lint defines the full lint run: project location, defaults, and the
// linters to execute.
type Lint struct {
	// ProjectDir is the directory the linters run in. Defaults to ".".
	ProjectDir string `yaml:"project_dir"`
	// Prefix overrides the auto-resolved command prefix for locally
	// installed tooling (e.g. "npx --no-install").
	Prefix   string                  `yaml:"prefix"`
	Defaults Defaults                `yaml:"defaults"`
	Linters  map[string]LinterConfig `yaml:"linters"`
	// Exclude lists glob patterns; diagnostics in matching paths are
	// dropped from results.
	Exclude []string `yaml:"exclude"`
}

// Defaults holds values applied to linters that don't specify their own.
type Defaults struct {
	Timeout string `yaml:"timeout"`
	Args    string `yaml:"args"`
}

// LinterConfig configures one linter invocation.
type LinterConfig struct {
	Args    string `yaml:"args"`
	AutoFix bool   `yaml:"auto_fix"`
	Timeout string `yaml:"timeout"`
}
