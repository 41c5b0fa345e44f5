package check

import (
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/rules"
)

// RuleCheck is the outcome of parsing one rule string
type RuleCheck struct {
	Rule   string
	Parsed rules.ParsedRule
	Err    error
}

// CheckRules parses each rule string independently
func CheckRules(ruleStrings []string) []RuleCheck {
	log := logging.GetLogger("commands.check")

	checks := make([]RuleCheck, 0, len(ruleStrings))
	failed := 0
	for _, r := range ruleStrings {
		parsed, err := rules.Parse(r)
		if err != nil {
			failed++
		}
		checks = append(checks, RuleCheck{Rule: r, Parsed: parsed, Err: err})
	}

	log.Info().
		Str("command", "CheckRules").
		Int("rules", len(checks)).
		Int("invalid", failed).
		Msg("Command finished")
	return checks
}
