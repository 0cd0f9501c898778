package linter

import "errors"

// ErrDependencyMissing indicates the package manager required to run linters
// is not installed. Setup cannot proceed.
var ErrDependencyMissing = errors.New("package manager is not installed")

// ErrToolNotInstalled indicates a linter binary failed its version probe.
// Fatal for that linter only.
var ErrToolNotInstalled = errors.New("linter is not installed")
