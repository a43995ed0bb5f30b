package cypherdsl

import "strings"

// Clause is one self-rendering fragment of a Cypher statement.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the serializer.
//
// Clause types:
//   - StartClause, MatchClause, UnwindClause: pattern/source clauses
//   - WhereClause: boolean filter, the one kind with merge capability
//   - CreateClause, MergeClause, SetClause, RemoveClause, DeleteClause: updates
//   - WithClause, ReturnClause: projections
//   - OrderByClause, SkipClause, LimitClause: result modifiers
//
// Each clause renders its own leading space and keyword; the Statement core
// inserts nothing between clauses.
type Clause interface {
	// render appends this clause's textual form to sb, using only
	// information the clause already owns.
	render(sb *strings.Builder)

	clauseNode() // Marker method - seals interface to this package
}

// renderList renders exprs joined by sep.
func renderList(sb *strings.Builder, exprs []Expression, sep string) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(sep)
		}
		e.render(sb)
	}
}

// StartClause selects starting points by legacy index or id lookup.
// Deprecated in recent Cypher dialects but still rendered for 3.x targets.
type StartClause struct {
	Items []Expression
}

func (c *StartClause) render(sb *strings.Builder) {
	sb.WriteString(" START ")
	renderList(sb, c.Items, ",")
}

func (*StartClause) clauseNode() {}

// MatchClause matches graph patterns. Optional marks an OPTIONAL MATCH.
type MatchClause struct {
	Optional bool
	Patterns []Expression
}

func (c *MatchClause) render(sb *strings.Builder) {
	if c.Optional {
		sb.WriteString(" OPTIONAL MATCH ")
	} else {
		sb.WriteString(" MATCH ")
	}
	renderList(sb, c.Patterns, ",")
}

func (*MatchClause) clauseNode() {}

// UnwindClause expands a list expression into rows bound to As.
type UnwindClause struct {
	List Expression
	As   string
}

func (c *UnwindClause) render(sb *strings.Builder) {
	sb.WriteString(" UNWIND ")
	c.List.render(sb)
	sb.WriteString(" AS ")
	sb.WriteString(c.As)
}

func (*UnwindClause) clauseNode() {}

// CreateClause creates the given patterns.
type CreateClause struct {
	Patterns []Expression
}

func (c *CreateClause) render(sb *strings.Builder) {
	sb.WriteString(" CREATE ")
	renderList(sb, c.Patterns, ",")
}

func (*CreateClause) clauseNode() {}

// MergeClause matches the given patterns or creates them if absent.
type MergeClause struct {
	Patterns []Expression
}

func (c *MergeClause) render(sb *strings.Builder) {
	sb.WriteString(" MERGE ")
	renderList(sb, c.Patterns, ",")
}

func (*MergeClause) clauseNode() {}

// SetItem is one property assignment in a SET clause.
type SetItem struct {
	Target Expression // property or identifier being assigned
	Value  Expression
}

// SetClause assigns property values.
type SetClause struct {
	Items []SetItem
}

func (c *SetClause) render(sb *strings.Builder) {
	sb.WriteString(" SET ")
	for i, item := range c.Items {
		if i > 0 {
			sb.WriteString(",")
		}
		item.Target.render(sb)
		sb.WriteString("=")
		item.Value.render(sb)
	}
}

func (*SetClause) clauseNode() {}

// RemoveClause removes properties or labels.
type RemoveClause struct {
	Items []Expression
}

func (c *RemoveClause) render(sb *strings.Builder) {
	sb.WriteString(" REMOVE ")
	renderList(sb, c.Items, ",")
}

func (*RemoveClause) clauseNode() {}

// DeleteClause deletes the named entities.
type DeleteClause struct {
	Items []Expression
}

func (c *DeleteClause) render(sb *strings.Builder) {
	sb.WriteString(" DELETE ")
	renderList(sb, c.Items, ",")
}

func (*DeleteClause) clauseNode() {}

// WithClause pipes intermediate results into the next query part.
type WithClause struct {
	Items []Expression
}

func (c *WithClause) render(sb *strings.Builder) {
	sb.WriteString(" WITH ")
	renderList(sb, c.Items, ",")
}

func (*WithClause) clauseNode() {}

// ReturnClause projects the statement's results.
type ReturnClause struct {
	Distinct bool
	Items    []Expression
}

func (c *ReturnClause) render(sb *strings.Builder) {
	if c.Distinct {
		sb.WriteString(" RETURN DISTINCT ")
	} else {
		sb.WriteString(" RETURN ")
	}
	renderList(sb, c.Items, ",")
}

func (*ReturnClause) clauseNode() {}

// SortOrder is the direction of an ORDER BY item.
type SortOrder string

const (
	Ascending  SortOrder = "ASCENDING"
	Descending SortOrder = "DESCENDING"
)

// OrderByItem is one sort key with an optional explicit direction.
type OrderByItem struct {
	Expr  Expression
	Order SortOrder // empty = dialect default (ascending)
}

// OrderByClause sorts the projected results.
type OrderByClause struct {
	Items []OrderByItem
}

func (c *OrderByClause) render(sb *strings.Builder) {
	sb.WriteString(" ORDER BY ")
	for i, item := range c.Items {
		if i > 0 {
			sb.WriteString(",")
		}
		item.Expr.render(sb)
		if item.Order != "" {
			sb.WriteString(" ")
			sb.WriteString(string(item.Order))
		}
	}
}

func (*OrderByClause) clauseNode() {}

// SkipClause skips the first Count result rows.
type SkipClause struct {
	Count Expression
}

func (c *SkipClause) render(sb *strings.Builder) {
	sb.WriteString(" SKIP ")
	c.Count.render(sb)
}

func (*SkipClause) clauseNode() {}

// LimitClause caps the number of result rows.
type LimitClause struct {
	Count Expression
}

func (c *LimitClause) render(sb *strings.Builder) {
	sb.WriteString(" LIMIT ")
	c.Count.render(sb)
}

func (*LimitClause) clauseNode() {}
