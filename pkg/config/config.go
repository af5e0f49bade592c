// Package config defines core configuration types for humorlint.
// These types are pure data structures; loading and merging live in
// internal/configloader. The rule set itself is fixed and has no
// configuration.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "sentence-semicolon"
	RuleFormatID       RuleFormat = "id"       // "HL004"
	RuleFormatCombined RuleFormat = "combined" // "HL004/sentence-semicolon"
)

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ServerConfig holds language server settings.
type ServerConfig struct {
	// MaxDiagnostics caps the diagnostics published per document (0 = unlimited).
	MaxDiagnostics int `yaml:"max_diagnostics" toml:"max_diagnostics"`

	// LogFile redirects server logs to a file instead of stderr.
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Config is the root configuration structure for humorlint.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Extensions are the file extensions checked by the check command.
	Extensions []string `yaml:"extensions" toml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Format specifies the output format of the check command.
	Format OutputFormat `yaml:"format" toml:"format"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"rule_format" toml:"rule_format"`

	// Color controls colored output: auto, always, never.
	Color ColorMode `yaml:"color" toml:"color"`

	// Jobs specifies the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `yaml:"jobs" toml:"jobs"`

	// Server configures the language server.
	Server ServerConfig `yaml:"server" toml:"server"`
}

// DefaultExtensions returns the file extensions checked when none are configured.
func DefaultExtensions() []string {
	return []string{".txt", ".md", ".comment"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Extensions: DefaultExtensions(),
		Ignore:     nil,
		Server: ServerConfig{
			MaxDiagnostics: 0,
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Color:      ColorAuto,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
