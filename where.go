package cypherdsl

import "strings"

// WhereClause filters the preceding pattern clause with a boolean condition.
//
// WHERE is the one clause kind with merge capability: when two WHERE clauses
// are admitted consecutively, the statement keeps a single WHERE whose
// condition is the conjunction of both. The merge is total - any two WHERE
// clauses combine, there is no failure mode.
type WhereClause struct {
	Condition Expression
}

func (c *WhereClause) render(sb *strings.Builder) {
	sb.WriteString(" WHERE ")
	c.Condition.render(sb)
}

func (*WhereClause) clauseNode() {}

// mergeWith returns a new WHERE clause whose condition is the conjunction
// of c's condition and other's. Neither input is mutated - admitted clauses
// are immutable values, which keeps Statement.Clone's shallow sequence copy
// safe when both statements later absorb further conditions.
func (c *WhereClause) mergeWith(other *WhereClause) *WhereClause {
	return &WhereClause{Condition: &And{Operands: []Expression{c.Condition, other.Condition}}}
}
