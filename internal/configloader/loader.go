package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/goasmfmt/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading GOASMFMT_* environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (GOASMFMT_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.goasmfmt.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/goasmfmt/config.yaml)
//  5. System config (/etc/goasmfmt/config.yaml)
//  6. Defaults
//
// CLI flags are applied on top by the caller, which knows which flags were
// explicitly set.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.New()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	// Lowest to highest precedence.
	sources := []string{paths.System, paths.User}
	if opts.ExplicitPath != "" {
		sources = append(sources, opts.ExplicitPath)
	} else {
		sources = append(sources, paths.Project)
	}

	for _, path := range sources {
		if path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			// An explicit path must exist; discovered paths already do.
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		fileCfg.applyTo(cfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		warnings := applyEnv(cfg)
		result.Warnings = append(result.Warnings, warnings...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}
