package reporter

import (
	"fmt"

	"github.com/yaklabco/humorlint/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = Format(config.FormatText)
	FormatTable   Format = Format(config.FormatTable)
	FormatJSON    Format = Format(config.FormatJSON)
	FormatSummary Format = Format(config.FormatSummary)
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "summary":
		return FormatSummary, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, table, json, summary", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}
