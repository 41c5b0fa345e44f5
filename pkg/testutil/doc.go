// Package testutil holds test helpers shared by rbedit packages.
//
// MemFS builds an in-memory types.FS from a path to content map, FailingFS
// injects errors for chosen paths, and CreateFile/ReadFile work on real
// t.TempDir trees for CLI tests. Test data is defined inline.
package testutil
