package rbedit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rule-driven editor for line-oriented configuration files"
	MsgApplyShort      = "Apply a rule set to a file"
	MsgPlanShort       = "Show the edits a rule set would make"
	MsgCheckShort      = "Parse rule strings and print their parts"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWatching      = "Watching %s for changes (Ctrl-C to stop)"
	MsgVersionFormat = "rbedit version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrEditFile      = "failed to edit %s: %w"
	MsgErrPlanEdits     = "failed to plan edits: %w"
	MsgErrKeywordFailed = "%d keyword(s) failed"
	MsgErrInvalidRules  = "%d rule(s) are invalid"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default is $XDG_CONFIG_HOME/rbedit/config.toml)"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagRules         = "Rule set file (.toml, .yaml, .yml or .json)"
	MsgFlagProfile       = "Configuration tree file (.yaml, .toml, .json or Quattor .xml)"
	MsgFlagRoot          = "Profile sub-tree to use, e.g. /software/components/dpmlfc"
	MsgFlagFile          = "File to edit"
	MsgFlagDryRun        = "Preview changes without writing them"
	MsgFlagBackup        = "Keep a copy of the previous content next to the file"
	MsgFlagWatch         = "Re-apply when the rules file or the profile changes"
	MsgFlagRemoveIfUndef = "Comment out keywords whose condition or attribute is undefined"
	MsgFlagAlwaysOnly    = "Apply only rules whose condition is ALWAYS"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
