package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/rules"
	"github.com/arthur-debert/rbedit/pkg/types"
)

const (
	trueText  = "yes"
	falseText = "no"
)

// instanceFlags lists the recognised instance parameters in rendering order
var instanceFlags = []struct {
	param string
	flag  string
}{
	{"logFile", "-l"},
	{"configFile", "-c"},
	{"logKeep", "-k"},
}

// FormatValue renders value and applies the quoting pass for lf
func FormatValue(value interface{}, lf rules.LineFormat, vf rules.ValueFormat, opts rules.ValueOption) (string, error) {
	text, err := RenderValue(value, vf, opts)
	if err != nil {
		return "", err
	}
	return QuoteValue(text, lf, vf), nil
}

// RenderValue turns a raw attribute value into text according to vf.
// Single is ignored here: emitting one line per element is up to the caller.
func RenderValue(value interface{}, vf rules.ValueFormat, opts rules.ValueOption) (string, error) {
	switch vf {
	case rules.Boolean:
		if Truthy(value) {
			return trueText, nil
		}
		return falseText, nil

	case rules.InstanceParams:
		params, ok := types.AsMap(value)
		if !ok && value != nil {
			return "", invalidValue(vf, value)
		}
		return RenderInstanceParams(params), nil

	case rules.Array:
		values, err := ArrayValues(types.AsList(value), opts)
		if err != nil {
			return "", err
		}
		return strings.Join(values, " "), nil

	case rules.HashKeys:
		m, ok := types.AsMap(value)
		if !ok {
			return "", invalidValue(vf, value)
		}
		return strings.Join(types.SortedKeys(m), " "), nil

	case rules.AsIs, rules.StringHash:
		s, ok := Scalar(value)
		if !ok {
			return "", invalidValue(vf, value)
		}
		return s, nil

	default:
		return "", errors.Newf(errors.ErrInvalidValueFormat, "unknown value format %d", int(vf))
	}
}

// ArrayValues converts list elements to text and applies Unique and Sorted.
// Unique always sorts.
func ArrayValues(list []interface{}, opts rules.ValueOption) ([]string, error) {
	values := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := Scalar(item)
		if !ok {
			return nil, invalidValue(rules.Array, item)
		}
		values = append(values, s)
	}

	if opts.Has(rules.Unique) {
		seen := make(map[string]struct{}, len(values))
		unique := values[:0]
		for _, v := range values {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			unique = append(unique, v)
		}
		values = unique
	}

	if opts.Has(rules.Unique) || opts.Has(rules.Sorted) {
		sort.Strings(values)
	}
	return values, nil
}

// RenderInstanceParams renders the -l, -c and -k flags present in params.
// Absent parameters contribute nothing; the result is never an error.
func RenderInstanceParams(params map[string]interface{}) string {
	var parts []string
	for _, f := range instanceFlags {
		raw, ok := params[f.param]
		if !ok {
			continue
		}
		value, _ := Scalar(raw)
		parts = append(parts, f.flag+" "+value)
	}
	return strings.Join(parts, " ")
}

// QuoteValue wraps text in double quotes for ShVar and EnvVar lines when it
// contains whitespace and is not already quoted, when it is a boolean, or
// when it is empty.
func QuoteValue(text string, lf rules.LineFormat, vf rules.ValueFormat) string {
	if !lf.Quoted() {
		return text
	}
	if (strings.ContainsAny(text, " \t\n\r\f\v") && !fullyQuoted(text)) || vf == rules.Boolean || text == "" {
		return `"` + text + `"`
	}
	return text
}

func fullyQuoted(text string) bool {
	if len(text) < 2 {
		return false
	}
	first := text[0]
	return (first == '"' || first == '\'') && text[len(text)-1] == first
}

// Scalar converts a scalar value to text. Lists and maps are not scalars.
func Scalar(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(val), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return "", false
	}
}

// Truthy decides the Boolean rendering of a value. Strings are parsed as
// booleans when possible; otherwise only "" and "0" are false.
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		return val != "" && val != "0"
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint64:
		return val != 0
	case float64:
		return val != 0
	default:
		s, ok := Scalar(val)
		if !ok {
			return true
		}
		return s != "" && s != "0"
	}
}

func invalidValue(vf rules.ValueFormat, value interface{}) error {
	return errors.Newf(errors.ErrInvalidValue, "value of type %T cannot be rendered as %s", value, vf).
		WithDetail("valueFormat", vf.String())
}
