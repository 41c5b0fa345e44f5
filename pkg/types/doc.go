// Package types defines the data shared across rbedit packages: the rule set,
// the configuration tree, and the filesystem and document interfaces the
// rule engine works against.
package types
