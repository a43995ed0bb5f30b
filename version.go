package cypherdsl

// Version constants for the rendered statement prefix.
const (
	// QueryPrefix starts every rendered statement.
	QueryPrefix = "CYPHER "

	// DefaultVersion is the dialect token used when none is given.
	DefaultVersion = "3.5"
)
