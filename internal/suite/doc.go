// Package suite runs render conformance suites.
//
// A suite is a YAML file naming queries in a CUE spec directory and the
// Cypher text they must render to. Suites back the CLI test command and the
// package's own golden tests, pinning rendered output across changes to the
// clause and expression renderers.
package suite
