package types

import "sort"

// GlobalOptionSet names the pseudo option set that reads attributes from the
// top level of a ConfigTree instead of a nested option set.
const GlobalOptionSet = "GLOBAL"

// ConfigTree maps option set names to attribute maps. Attributes of the
// GLOBAL option set are stored directly at the top level.
//
// Values are whatever a decoder produced: scalars, []interface{},
// map[string]interface{}, or maps of maps for instance parameters.
type ConfigTree map[string]interface{}

// OptionSet returns the attribute map stored under name. For GlobalOptionSet
// the tree itself is returned.
func (t ConfigTree) OptionSet(name string) (map[string]interface{}, bool) {
	if name == GlobalOptionSet {
		return t, t != nil
	}
	raw, ok := t[name]
	if !ok {
		return nil, false
	}
	set, ok := AsMap(raw)
	return set, ok
}

// HasOptionSet reports whether the option set key exists, whatever its value.
func (t ConfigTree) HasOptionSet(name string) bool {
	if name == GlobalOptionSet {
		return t != nil
	}
	_, ok := t[name]
	return ok
}

// Lookup returns the raw value of attribute in the named option set.
// Existence is what counts: a present zero value or empty string is found.
func (t ConfigTree) Lookup(optionSet, attribute string) (interface{}, bool) {
	set, ok := t.OptionSet(optionSet)
	if !ok {
		return nil, false
	}
	v, ok := set[attribute]
	return v, ok
}

// AsMap converts the map shapes produced by the YAML, TOML, JSON and XML
// decoders into map[string]interface{}.
func AsMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case ConfigTree:
		return m, true
	case map[string]string:
		out := make(map[string]interface{}, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// AsList converts list values into []interface{}. A scalar becomes a
// one-element list.
func AsList(v interface{}) []interface{} {
	switch l := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return l
	case []string:
		out := make([]interface{}, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out
	case []int:
		out := make([]interface{}, len(l))
		for i, n := range l {
			out[i] = n
		}
		return out
	default:
		return []interface{}{v}
	}
}

// SortedKeys returns the keys of m in ascending lexicographic order
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
