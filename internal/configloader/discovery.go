// Package configloader provides configuration loading and resolution:
// XDG-compliant discovery, upward project-config search, hierarchical
// merging, and environment variable support.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
// Missing files are represented as empty strings.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/goasmfmt/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/goasmfmt/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.goasmfmt.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".goasmfmt.yml",
	".goasmfmt.yaml",
	"goasmfmt.yml",
	"goasmfmt.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, bounding the
// upward project-config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}

	paths := &ConfigPaths{
		System: findFirst("/etc/goasmfmt", []string{"config.yaml", "config.yml"}),
		User:   findUserConfig(),
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

// FindProjectConfig searches upward from workDir for a project config file,
// stopping at a VCS root or the filesystem root.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if found := findFirst(dir, projectConfigFiles); found != "" {
			return found, nil
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return findFirst(filepath.Join(configHome, "goasmfmt"), []string{"config.yaml", "config.yml"})
}

func findFirst(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
