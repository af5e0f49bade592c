package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides whether a path relative to the working directory is excluded.
type Matcher struct {
	patterns []glob.Glob
}

// NewMatcher compiles exclude patterns. Patterns use '/' as the separator,
// so "*" stays within one path segment and "**" crosses segments.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]glob.Glob, 0, len(patterns))}
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}

// Excluded reports whether relPath matches any pattern. A pattern matches
// when it matches the whole relative path or just the base name.
func (m *Matcher) Excluded(relPath string) bool {
	if m == nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, g := range m.patterns {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
	}
	return false
}

// excludedDir reports whether a directory and everything under it is excluded.
func (m *Matcher) excludedDir(relPath string) bool {
	return m.Excluded(relPath) || m.Excluded(filepath.ToSlash(relPath)+"/")
}

// Discover finds comment files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
// Files named explicitly are included even when their extension is not listed.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	matcher, err := NewMatcher(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		matcher:    matcher,
		follow:     opts.FollowSymlinks,
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
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
			if !matcher.Excluded(w.rel(absPath)) {
				add(absPath)
			}
			continue
		}

		discovered, err := w.walk(absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type walker struct {
	ctx        context.Context //nolint:containedctx // Scoped to a single Discover call.
	workDir    string
	extensions []string
	matcher    *Matcher
	follow     bool
}

func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// walk recursively walks a directory and returns matching files.
func (w *walker) walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := w.rel(path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && w.matcher.excludedDir(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible targets are skipped.
			}
			if info.IsDir() {
				if !w.follow {
					return nil
				}
				// Walk the target: WalkDir uses Lstat on its root.
				subFiles, err := w.walk(realPath)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if hasMatchingExtension(path, w.extensions) && !w.matcher.Excluded(relPath) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
