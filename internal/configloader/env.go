package configloader

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/humorlint/pkg/config"
)

// envVarPrefix is the prefix for all humorlint environment variables.
const envVarPrefix = "HUMORLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LOG_LEVEL":       {field: "log_level", typ: envTypeString, help: "Log level: debug, info, warn, or error"},
	"LOG_FILE":        {field: "server.log_file", typ: envTypeString, help: "Language server log file"},
	"FORMAT":          {field: "format", typ: envTypeString, help: "Output format: text, table, json, or summary"},
	"RULE_FORMAT":     {field: "rule_format", typ: envTypeString, help: "Rule identifiers: name, id, or combined"},
	"COLOR":           {field: "color", typ: envTypeString, help: "Color output: auto, always, or never"},
	"JOBS":            {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"MAX_DIAGNOSTICS": {field: "server.max_diagnostics", typ: envTypeInt, help: "Diagnostics published per document (0 = unlimited)"},
	"IGNORE":          {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore globs"},
	"EXTENSIONS":      {field: "extensions", typ: envTypeSlice, help: "Comma-separated list of file extensions"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with HUMORLINT_ (e.g., HUMORLINT_LOG_LEVEL).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, envSuffix := range slices.Sorted(maps.Keys(envMappings)) {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: invalid integer for %s: %q", ErrInvalidConfig, envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "log_level":
		cfg.LogLevel = value
	case "server.log_file":
		cfg.Server.LogFile = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "server.max_diagnostics":
		cfg.Server.MaxDiagnostics = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	result := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		result[envVarPrefix+suffix] = mapping.help
	}
	return result
}
