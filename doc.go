// Package cypherdsl builds Cypher query statements programmatically.
//
// A Statement accumulates an ordered sequence of clauses (MATCH, WHERE,
// RETURN, ...) and renders them into the canonical textual form prefixed
// with a dialect version marker:
//
//	CYPHER 3.5 MATCH (n:Person) WHERE n.age > 30 RETURN n
//
// Construction is forward-only: clauses go in, text comes out. Parsing
// Cypher text back into the model is out of scope.
//
// Clause and Expression are sealed interfaces - only types in this package
// implement them. The marker method pattern prevents external
// implementations and enables exhaustive type switches in the serializer.
//
// Key structural rules:
//   - Clause order is insertion order; the statement never reorders.
//   - Consecutive WHERE clauses merge into one conjunction. Non-consecutive
//     WHERE clauses do not merge.
//   - Clone produces an independent clause sequence sharing clause values,
//     enabling builder continuation (branching a shared prefix into two
//     independent statements).
//
// A Statement is a plain mutable aggregate with no internal locking. Use
// one goroutine per statement; use Clone to hand a branch to another
// goroutine.
package cypherdsl
