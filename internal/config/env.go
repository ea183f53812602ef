package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ProjectEnvPath is the per-directory env file.
const ProjectEnvPath = ".triage.env"

// LoadEnvFiles loads env files into the process environment.
// Load order (later wins): global (~/.config/triage/env), then project (.triage.env).
// Keys already set in the environment are never overwritten.
func LoadEnvFiles() {
	origKeys := make(map[string]bool)
	for _, entry := range os.Environ() {
		if k, _, ok := strings.Cut(entry, "="); ok {
			origKeys[k] = true
		}
	}

	merged := make(map[string]string)
	mergeEnvFile(merged, GlobalEnvPath())
	mergeEnvFile(merged, ProjectEnvPath)

	for k, v := range merged {
		if !origKeys[k] {
			_ = os.Setenv(k, v)
		}
	}
}

// mergeEnvFile reads a dotenv file and merges into dst (later call overwrites earlier).
// Silently skips missing or unreadable files.
func mergeEnvFile(dst map[string]string, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	envs, err := ParseEnvFile(data)
	if err != nil {
		return
	}
	for k, v := range envs {
		dst[k] = v
	}
}

// ParseEnvFile parses dotenv-formatted data (KEY=VALUE, comments, quotes, export prefixes).
func ParseEnvFile(data []byte) (map[string]string, error) {
	return godotenv.Parse(bytes.NewReader(data))
}

// GlobalEnvPath returns the path to the global triage env file.
func GlobalEnvPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "triage", "env")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "triage", "env")
}
