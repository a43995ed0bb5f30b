package cypherdsl

import (
	"slices"
	"strings"
)

// Statement is the aggregate for a Cypher query under construction.
//
// It owns an ordered sequence of clauses. Insertion order is semantically
// significant - it determines render order and therefore the produced text.
// The sequence is never reordered or deduplicated; the only structural rule
// is the consecutive-WHERE merge applied by Add.
//
// Thread-safety: none. One builder goroutine per Statement; use Clone to
// branch a statement for independent continuation.
type Statement struct {
	clauses []Clause
}

// NewStatement creates an empty statement.
func NewStatement() *Statement {
	return &Statement{}
}

// Add admits a clause as the new last element of the sequence.
//
// If the sequence is non-empty and both the incoming clause and the current
// tail are WHERE clauses, the tail is replaced by their conjunction and the
// sequence length is unchanged. The probe inspects only the tail element:
// a WHERE earlier in the sequence never merges. The merge check is skipped
// entirely on an empty sequence - the tail probe is undefined there.
//
// A nil clause is rejected with an *ArgumentError and leaves the statement
// unchanged.
func (s *Statement) Add(c Clause) error {
	if c == nil {
		return &ArgumentError{Name: "clause", Message: "may not be nil"}
	}

	if len(s.clauses) > 0 {
		if incoming, ok := c.(*WhereClause); ok {
			if prev, ok := LastClause[*WhereClause](s); ok {
				s.clauses[len(s.clauses)-1] = prev.mergeWith(incoming)
				return nil
			}
		}
	}

	s.clauses = append(s.clauses, c)
	return nil
}

// LastClause returns the tail clause of the statement if and only if it has
// type T. Only the final element is inspected; earlier clauses of type T do
// not match. This asymmetry is what restricts WHERE merging to consecutive
// clauses.
//
// Returns the zero value and false on an empty statement.
func LastClause[T Clause](s *Statement) (T, bool) {
	var zero T
	if len(s.clauses) == 0 {
		return zero, false
	}
	last, ok := s.clauses[len(s.clauses)-1].(T)
	if !ok {
		return zero, false
	}
	return last, true
}

// Render writes the statement's textual form to sb: the fixed prefix, the
// given dialect version token, then each clause in sequence order. The core
// inserts no separators - each clause renders its own leading space and
// keyword.
//
// Render does not mutate the statement. Repeated renders with no intervening
// Add produce byte-identical output.
func (s *Statement) Render(sb *strings.Builder, version string) {
	sb.WriteString(QueryPrefix)
	sb.WriteString(version)
	for _, c := range s.clauses {
		c.render(sb)
	}
}

// RenderDefault renders with the default dialect version.
func (s *Statement) RenderDefault(sb *strings.Builder) {
	s.Render(sb, DefaultVersion)
}

// Clone returns a new statement whose clause sequence is an independent
// shallow copy of the original's. Further Add calls on either statement do
// not affect the other. Clause values are shared; they are immutable once
// admitted (WHERE merge replaces the tail element rather than mutating it),
// so the shallow copy is safe.
func (s *Statement) Clone() *Statement {
	return &Statement{clauses: slices.Clone(s.clauses)}
}

// Len returns the number of clauses in the sequence.
func (s *Statement) Len() int {
	return len(s.clauses)
}

// Clauses returns a copy of the clause sequence in admission order.
func (s *Statement) Clauses() []Clause {
	return slices.Clone(s.clauses)
}

// String renders the statement with the default dialect version.
func (s *Statement) String() string {
	var sb strings.Builder
	s.RenderDefault(&sb)
	return sb.String()
}
