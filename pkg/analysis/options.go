package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by issue count, highest first.
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically by rule ID or path.
	SortByAlpha SortField = "alpha"
	// SortByOrder keeps rules in the order given by Options.RuleOrder.
	SortByOrder SortField = "order"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortByOrder:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// SortBy specifies how to sort ByFile and ByRule. Files have no natural
	// order, so SortByOrder sorts them by count.
	SortBy SortField

	// RuleOrder lists rule IDs in display order for SortByOrder.
	// Rules missing from it sort last, by ID.
	RuleOrder []string

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		SortBy: SortByCount,
	}
}
