package configloader

import (
	"slices"

	"github.com/yaklabco/humorlint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Server: merge individual fields.
	if override.Server.MaxDiagnostics != 0 {
		result.Server.MaxDiagnostics = override.Server.MaxDiagnostics
	}
	if override.Server.LogFile != "" {
		result.Server.LogFile = override.Server.LogFile
	}

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
