package internal

import (
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/loader"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// InputOptions name the rule set and profile a command works from
type InputOptions struct {
	FS          types.FS
	RulesPath   string
	ProfilePath string

	// Root selects a sub-tree of the profile, e.g. /software/components/dpmlfc
	Root string
}

// LoadInputs reads the rule set and configuration tree
func LoadInputs(opts InputOptions) (types.RuleSet, types.ConfigTree, error) {
	log := logging.GetLogger("commands.internal")

	if opts.FS == nil {
		return nil, nil, errors.New(errors.ErrArgumentMissing, "no filesystem")
	}
	if opts.RulesPath == "" {
		return nil, nil, errors.New(errors.ErrArgumentMissing, "no rules file given")
	}
	if opts.ProfilePath == "" {
		return nil, nil, errors.New(errors.ErrArgumentMissing, "no profile given")
	}

	ruleSet, err := loader.LoadRuleSet(opts.FS, opts.RulesPath)
	if err != nil {
		return nil, nil, err
	}

	tree, err := loader.LoadConfigTree(opts.FS, opts.ProfilePath, opts.Root)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().
		Str("rules", opts.RulesPath).
		Str("profile", opts.ProfilePath).
		Str("root", opts.Root).
		Int("keywords", len(ruleSet)).
		Msg("Inputs loaded")

	return ruleSet, tree, nil
}
