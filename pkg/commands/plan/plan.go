package plan

import (
	"github.com/arthur-debert/rbedit/pkg/commands/internal"
	"github.com/arthur-debert/rbedit/pkg/engine"
	"github.com/arthur-debert/rbedit/pkg/logging"
)

// PlanEditsOptions defines the options for the PlanEdits command.
type PlanEditsOptions struct {
	internal.InputOptions

	Engine engine.Options
}

// PlanEdits computes the edits a rule set would make, without a file
func PlanEdits(opts PlanEditsOptions) (*engine.Result, error) {
	log := logging.GetLogger("commands.plan")
	log.Debug().Str("command", "PlanEdits").Msg("Executing command")

	ruleSet, tree, err := internal.LoadInputs(opts.InputOptions)
	if err != nil {
		return nil, err
	}

	result, err := engine.New(opts.Engine).Plan(ruleSet, tree)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "PlanEdits").
		Int("edits", len(result.Edits())).
		Msg("Command finished")
	return result, nil
}
