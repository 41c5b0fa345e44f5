package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// LineFormat selects the syntax used to render a keyword/value line
type LineFormat int

// Line formats. The numeric values are part of the rule grammar.
const (
	// ShVar renders key=val
	ShVar LineFormat = iota + 1
	// EnvVar renders export key=val
	EnvVar
	// KeyVal renders key val
	KeyVal
	// KeyValSetenv renders setenv key = val
	KeyValSetenv
	// KeyValSet renders set key = val
	KeyValSet
)

// DefaultLineFormat is used for keywords whose rule string is empty
const DefaultLineFormat = ShVar

var lineFormatNames = map[LineFormat]string{
	ShVar:        "ShVar",
	EnvVar:       "EnvVar",
	KeyVal:       "KeyVal",
	KeyValSetenv: "KeyValSetenv",
	KeyValSet:    "KeyValSet",
}

// String returns the stable name of the line format
func (f LineFormat) String() string {
	if name, ok := lineFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("LineFormat(%d)", int(f))
}

// Valid reports whether f is a known line format
func (f LineFormat) Valid() bool {
	_, ok := lineFormatNames[f]
	return ok
}

// Quoted reports whether values rendered with this format go through the
// shell quoting pass and carry the generated-line marker.
func (f LineFormat) Quoted() bool {
	return f == ShVar || f == EnvVar
}

// ParseLineFormat accepts a line format number or name
func ParseLineFormat(s string) (LineFormat, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		f := LineFormat(n)
		if !f.Valid() {
			return 0, errors.Newf(errors.ErrInvalidLineFormat, "unknown line format %d", n).
				WithDetail("code", s)
		}
		return f, nil
	}
	for f, name := range lineFormatNames {
		if strings.EqualFold(name, s) {
			return f, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidLineFormat, "unknown line format %q", s).
		WithDetail("code", s)
}

// ValueFormat selects how an attribute value becomes line text
type ValueFormat int

// Value formats. The numeric values are part of the rule grammar.
const (
	// AsIs passes the value through
	AsIs ValueFormat = iota
	// Boolean renders yes or no
	Boolean
	// InstanceParams renders -l/-c/-k flags from a parameter map
	InstanceParams
	// Array joins list elements with a space
	Array
	// HashKeys joins the sorted keys of a map with a space
	HashKeys
	// StringHash emits one "key value" line per map entry
	StringHash
)

var valueFormatNames = map[ValueFormat]string{
	AsIs:           "AsIs",
	Boolean:        "Boolean",
	InstanceParams: "InstanceParams",
	Array:          "Array",
	HashKeys:       "HashKeys",
	StringHash:     "StringHash",
}

// String returns the stable name of the value format
func (f ValueFormat) String() string {
	if name, ok := valueFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ValueFormat(%d)", int(f))
}

// Valid reports whether f is a known value format
func (f ValueFormat) Valid() bool {
	_, ok := valueFormatNames[f]
	return ok
}

// ParseValueFormat accepts a value format number or name
func ParseValueFormat(s string) (ValueFormat, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		f := ValueFormat(n)
		if !f.Valid() {
			return 0, errors.Newf(errors.ErrInvalidValueFormat, "unknown value format %d", n).
				WithDetail("code", s)
		}
		return f, nil
	}
	for f, name := range valueFormatNames {
		if strings.EqualFold(name, s) {
			return f, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidValueFormat, "unknown value format %q", s).
		WithDetail("code", s)
}

// ValueOption is a bitmask of modifiers for list rendering
type ValueOption uint

// Value options
const (
	// None means no modifier
	None ValueOption = 0
	// Single emits one line per value instead of one joined line
	Single ValueOption = 1 << (iota - 1)
	// Unique removes duplicates and implies Sorted
	Unique
	// Sorted sorts values in ascending lexicographic order
	Sorted
)

var valueOptionNames = []struct {
	opt  ValueOption
	name string
}{
	{Single, "Single"},
	{Unique, "Unique"},
	{Sorted, "Sorted"},
}

const allValueOptions = Single | Unique | Sorted

// Has reports whether every bit of flag is set
func (o ValueOption) Has(flag ValueOption) bool {
	return o&flag == flag
}

// String returns the flag names joined with |
func (o ValueOption) String() string {
	if o == None {
		return "None"
	}
	var names []string
	for _, v := range valueOptionNames {
		if o.Has(v.opt) {
			names = append(names, v.name)
		}
	}
	if rest := o &^ allValueOptions; rest != 0 {
		names = append(names, strconv.FormatUint(uint64(rest), 10))
	}
	return strings.Join(names, "|")
}

// ParseValueOptions accepts a bitmask number or flag names joined with |
func ParseValueOptions(s string) (ValueOption, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None, nil
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		opts := ValueOption(n)
		if opts&^allValueOptions != 0 {
			return None, errors.Newf(errors.ErrRuleParse, "unknown value option bits in %d", n).
				WithDetail("options", s)
		}
		return opts, nil
	}

	var opts ValueOption
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for _, v := range valueOptionNames {
			if strings.EqualFold(v.name, part) {
				opts |= v.opt
				found = true
				break
			}
		}
		if !found && !strings.EqualFold(part, "None") {
			return None, errors.Newf(errors.ErrRuleParse, "unknown value option %q", part).
				WithDetail("options", s)
		}
	}
	return opts, nil
}

// LineFormatNames returns the stable line format names in code order
func LineFormatNames() []string {
	names := make([]string, 0, len(lineFormatNames))
	for f := ShVar; f <= KeyValSet; f++ {
		names = append(names, f.String())
	}
	return names
}

// ValueFormatNames returns the stable value format names in code order
func ValueFormatNames() []string {
	names := make([]string, 0, len(valueFormatNames))
	for f := AsIs; f <= StringHash; f++ {
		names = append(names, f.String())
	}
	return names
}
