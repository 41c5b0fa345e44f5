// Package commands provides the command implementations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - edit/     - EditFile, apply a rule set to a file
//   - plan/     - PlanEdits, compute edits without a file
//   - check/    - CheckRules, parse rule strings
//   - internal/ - input loading shared by edit and plan
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/rbedit/pkg/commands/check"
	"github.com/arthur-debert/rbedit/pkg/commands/edit"
	"github.com/arthur-debert/rbedit/pkg/commands/internal"
	"github.com/arthur-debert/rbedit/pkg/commands/plan"
	"github.com/arthur-debert/rbedit/pkg/engine"
)

// InputOptions name the rule set, profile and profile root
type InputOptions = internal.InputOptions

// EditFile applies a rule set to one file.
type EditFileOptions = edit.EditFileOptions
type EditFileResult = edit.EditFileResult

func EditFile(opts EditFileOptions) (*EditFileResult, error) {
	return edit.EditFile(opts)
}

// PlanEdits lists the edits a rule set would make.
type PlanEditsOptions = plan.PlanEditsOptions

func PlanEdits(opts PlanEditsOptions) (*engine.Result, error) {
	return plan.PlanEdits(opts)
}

// CheckRules parses rule strings.
type RuleCheck = check.RuleCheck

func CheckRules(ruleStrings []string) []RuleCheck {
	return check.CheckRules(ruleStrings)
}
