package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/config"
)

// ErrInvalidConfig is returned when the resolved configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "server.max_diagnostics").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns nil when valid, or every error joined and wrapped with ErrInvalidConfig.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for i := range r.Errors {
		errs = append(errs, &r.Errors[i])
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// knownRuleFormats lists valid rule format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleFormats = map[config.RuleFormat]bool{
	config.RuleFormatName:     true,
	config.RuleFormatID:       true,
	config.RuleFormatCombined: true,
}

// knownColorModes lists valid color values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[config.ColorMode]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, summary", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat),
		})
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Server.MaxDiagnostics < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.max_diagnostics",
			Value:   cfg.Server.MaxDiagnostics,
			Message: "max_diagnostics must be >= 0 (0 means unlimited)",
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks that extensions look like ".ext".
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	if cfg.Extensions != nil && len(cfg.Extensions) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "extensions",
			Message: "no extensions configured; check will only lint files named explicitly",
		})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must look like \".txt\"", ext),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns compile as globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

// IsValidColorMode returns true if the color mode is valid.
func IsValidColorMode(c config.ColorMode) bool {
	return knownColorModes[c]
}
