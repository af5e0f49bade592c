package config

import "fmt"

// FormatRuleID formats a rule identifier based on the given format.
// Falls back to ID if name is empty.
func FormatRuleID(format RuleFormat, ruleID, ruleName string) string {
	if ruleName == "" {
		return ruleID
	}

	switch format {
	case RuleFormatID:
		return ruleID
	case RuleFormatCombined:
		return ruleID + "/" + ruleName
	default:
		return ruleName
	}
}

// ParseRuleFormat parses a rule format string, returning an error for unknown values.
func ParseRuleFormat(value string) (RuleFormat, error) {
	switch RuleFormat(value) {
	case "":
		return RuleFormatName, nil
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return RuleFormat(value), nil
	default:
		return "", fmt.Errorf("unknown rule format %q; valid formats: name, id, combined", value)
	}
}
