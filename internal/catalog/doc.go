// Package catalog stores named statements in SQLite.
//
// Each entry keeps the statement twice: a kind-tagged JSON envelope for
// lossless structural reload, and the rendered Cypher text for display.
// Entries are content-addressed by a domain-separated SHA-256 of the
// rendered text, so revisions of a statement can be detected cheaply.
//
// The catalog is the persistence half of builder workflows: build a
// statement, save it under a name, reload and continue it later.
package catalog
