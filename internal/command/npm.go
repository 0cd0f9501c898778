package command

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePrefix returns the command prefix used to invoke locally installed
// node tooling in dir. Projects with a node_modules/.bin directory get
// "npx --no-install" so local binaries win over globals and nothing is
// fetched from the network; everything else runs the bare binary.
func ResolvePrefix(dir string) string {
	info, err := os.Stat(filepath.Join(dir, "node_modules", ".bin"))
	if err == nil && info.IsDir() {
		return "npx --no-install"
	}
	return ""
}

// Join assembles a shell command from parts, skipping empty ones.
func Join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
