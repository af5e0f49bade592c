// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/humorlint/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// comment files. Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to WorkingDir, used to skip
	// files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// OptionsFromConfig builds runner options from the resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}
	opts.Extensions = cfg.Extensions
	opts.ExcludeGlobs = cfg.Ignore
	opts.Jobs = cfg.Jobs
	return opts
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
