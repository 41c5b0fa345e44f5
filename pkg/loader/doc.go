// Package loader reads rule sets and configuration trees from files.
//
// Rule sets map keywords to rule strings and can be written in TOML, YAML or
// JSON. A file may either hold the mapping at its top level or under a
// single "rules" table.
//
// Configuration trees can be TOML, YAML, JSON, or an XML profile as written
// by the Quattor configuration cache, where typed elements (nlist, list,
// string, long, double, boolean) carry their key in a name attribute.
// SelectRoot narrows a tree to a sub-path such as
// /software/components/dpmlfc so that its children become option sets.
package loader
