package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the humor rules",
		Long: `List every built-in rule with its ID, diagnostic code, severity,
and description, in the order the rules run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case "text":
			default:
				return fmt.Errorf("%w: unknown format %q; valid formats: text, json", ErrInvalidUsage, flags.format)
			}

			ruleFormat, err := config.ParseRuleFormat(flags.ruleFormat)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
			}

			logger := logging.NewInteractive(cmd.OutOrStdout())
			logger.Info("available rules")

			for _, rule := range rules {
				ruleIdentifier := config.FormatRuleID(ruleFormat, rule.ID(), rule.Name())

				logger.Info(ruleIdentifier,
					logging.FieldCode, rule.Code(),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Code:        rule.Code(),
			Message:     rule.Message(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
