// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation for YAML and TOML files.
package configloader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/humorlint/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
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

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (HUMORLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.humorlint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/humorlint/config.yaml)
//  6. System config (/etc/humorlint/config.yaml)
//  7. Defaults
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

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	result.Paths = paths

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, unknown, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		for _, key := range unknown {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown field %q; it will be ignored", layer.path, key))
		}
		if validation := ValidateWithFile(fileCfg, layer.path); !validation.Valid() {
			return nil, validation.Err()
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if err := validation.Err(); err != nil {
		return nil, err
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads a single configuration file, YAML or TOML by extension.
func LoadFile(path string) (*config.Config, error) {
	cfg, _, err := loadConfigFile(path)
	return cfg, err
}

// loadConfigFile loads a configuration file and reports keys it did not recognize.
func loadConfigFile(path string) (*config.Config, []string, error) {
	//nolint:gosec // Config paths come from discovery or the --config flag.
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	if IsTOMLConfig(path) {
		return parseTOML(content)
	}
	return parseYAML(content)
}

func parseTOML(content []byte) (*config.Config, []string, error) {
	cfg := &config.Config{}
	meta, err := toml.Decode(string(content), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parse TOML: %w", ErrInvalidConfig, err)
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

func parseYAML(content []byte) (*config.Config, []string, error) {
	cfg := &config.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, nil, fmt.Errorf("%w: parse YAML: %w", ErrInvalidConfig, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: parse YAML: %w", ErrInvalidConfig, err)
	}
	return cfg, unknownYAMLKeys(raw), nil
}

// knownKeys lists the accepted top-level keys and, for tables, their children.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string][]string{
	"log_level":   nil,
	"extensions":  nil,
	"ignore":      nil,
	"format":      nil,
	"rule_format": nil,
	"color":       nil,
	"jobs":        nil,
	"server":      {"max_diagnostics", "log_file"},
}

func unknownYAMLKeys(raw map[string]any) []string {
	var unknown []string
	for key, value := range raw {
		children, ok := knownKeys[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		nested, isMap := value.(map[string]any)
		if !isMap || children == nil {
			continue
		}
		for child := range nested {
			if !slices.Contains(children, child) {
				unknown = append(unknown, key+"."+child)
			}
		}
	}
	slices.Sort(unknown)
	return unknown
}

// WriteDefault writes a commented default config to path, as TOML when the
// extension is .toml and YAML otherwise.
func WriteDefault(path string) error {
	var body bytes.Buffer
	if IsTOMLConfig(path) {
		if err := toml.NewEncoder(&body).Encode(config.NewConfig()); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	} else {
		content, err := yaml.Marshal(config.NewConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		body.Write(content)
	}

	header := "# humorlint configuration\n# The rule set is fixed; these settings only shape how files are found and reported.\n\n"

	//nolint:gosec // Config files are meant to be world-readable.
	if err := os.WriteFile(path, append([]byte(header), body.Bytes()...), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
