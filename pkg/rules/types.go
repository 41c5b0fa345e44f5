package rules

// AlwaysCondition is the condition kept in always-rules-only mode
const AlwaysCondition = "ALWAYS"

// ParsedRule is the structured form of one rule string
type ParsedRule struct {
	// Condition is the raw condition without its negation mark, empty if none
	Condition string

	// Negate flips the condition test
	Negate bool

	// Attribute is the attribute read from each option set. Empty means the
	// keyword is written without a value.
	Attribute string

	// OptionSets lists the option sets to read, in rule order
	OptionSets []string

	LineFormat   LineFormat
	ValueFormat  ValueFormat
	ValueOptions ValueOption
}

// Options control how rules are selected
type Options struct {
	// AlwaysRulesOnly keeps only rules whose condition is exactly ALWAYS
	AlwaysRulesOnly bool

	// RemoveIfUndef comments out lines whose condition or attribute is undefined
	RemoveIfUndef bool
}

// Action is what a rule asks for once its condition has been evaluated
type Action int

const (
	// ActionSkip leaves the document alone for this keyword
	ActionSkip Action = iota
	// ActionRemove comments out lines matching the keyword
	ActionRemove
	// ActionUpdate resolves the attribute and writes the line
	ActionUpdate
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionRemove:
		return "remove"
	case ActionUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Decision is the outcome of parsing and evaluating one rule
type Decision struct {
	Action Action
	Rule   ParsedRule
}

// Keyword is a rule set key with its prefix interpreted
type Keyword struct {
	// Raw is the key as written in the rule set
	Raw string

	// Name is the literal keyword written in the document
	Name string

	// CommentOut is set by the "-" prefix
	CommentOut bool

	// RemoveIfUndef is set by the "?" prefix
	RemoveIfUndef bool
}
