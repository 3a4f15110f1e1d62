package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover resolves opts.Paths to a deterministically sorted list of
// absolute source file paths. Explicit file arguments are accepted as-is
// regardless of extension; directories are scanned for matching extensions,
// descending into subdirectories only when opts.Recurse is set. Hidden
// files and directories are skipped during scans.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Named explicitly: only the exclude list can veto it.
			if !excluded(absPath, workDir, opts.ExcludeGlobs) {
				add(absPath)
			}
			continue
		}

		found, err := scanDirectory(ctx, absPath, workDir, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

// scanDirectory collects matching files under root.
func scanDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if !opts.Recurse || strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if excluded(path, workDir, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !hasExtension(path, opts.effectiveExtensions()) {
			return nil
		}
		if excluded(path, workDir, opts.ExcludeGlobs) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan directory %s: %w", root, walkErr)
	}

	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// excluded matches the path against the exclude globs, trying the
// workDir-relative path, the full path, and the base name.
func excluded(path, workDir string, globs []string) bool {
	if len(globs) == 0 {
		return false
	}

	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range globs {
		pattern = filepath.ToSlash(pattern)
		for _, candidate := range []string{rel, filepath.ToSlash(path), filepath.Base(path)} {
			if ok, err := filepath.Match(pattern, candidate); err == nil && ok {
				return true
			}
		}
	}
	return false
}
