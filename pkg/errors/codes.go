package errors

// ErrorCode identifies a failure class. Codes are stable and safe to match in
// tests and scripts.
type ErrorCode string

const (
	ErrUnknown         ErrorCode = "UNKNOWN"
	ErrInternal        ErrorCode = "INTERNAL"
	ErrArgumentMissing ErrorCode = "ARGUMENT_MISSING"
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"

	// Rule parsing and value rendering
	ErrRuleParse          ErrorCode = "RULE_PARSE"
	ErrInvalidLineFormat  ErrorCode = "INVALID_LINE_FORMAT"
	ErrInvalidValueFormat ErrorCode = "INVALID_VALUE_FORMAT"
	ErrInvalidValue       ErrorCode = "INVALID_VALUE"
	ErrKeywordsFailed     ErrorCode = "KEYWORDS_FAILED"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	ErrRuleSetLoad ErrorCode = "RULESET_LOAD"
	ErrProfileLoad ErrorCode = "PROFILE_LOAD"

	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrWatch     ErrorCode = "WATCH"
)

// Process exit statuses reported by the CLI.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitRules    = 3
	ExitIO       = 4
	ExitKeywords = 5
)

var exitStatuses = map[ErrorCode]int{
	ErrArgumentMissing:    ExitUsage,
	ErrInvalidInput:       ExitUsage,
	ErrConfigLoad:         ExitUsage,
	ErrConfigParse:        ExitUsage,
	ErrRuleParse:          ExitRules,
	ErrInvalidLineFormat:  ExitRules,
	ErrInvalidValueFormat: ExitRules,
	ErrInvalidValue:       ExitRules,
	ErrRuleSetLoad:        ExitRules,
	ErrProfileLoad:        ExitRules,
	ErrFileRead:           ExitIO,
	ErrFileWrite:          ExitIO,
	ErrWatch:              ExitIO,
	ErrKeywordsFailed:     ExitKeywords,
}

// ExitStatus maps an error to the status the CLI exits with. A nil error is
// ExitOK; errors without a known code are ExitFailure.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}
	if status, ok := exitStatuses[GetErrorCode(err)]; ok {
		return status
	}
	return ExitFailure
}
