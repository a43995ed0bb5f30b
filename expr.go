package cypherdsl

import (
	"strconv"
	"strings"
)

// Expression is a self-rendering value, predicate, or pattern fragment used
// inside clauses.
//
// This is a sealed interface - only types in this package implement it.
//
// Expression types:
//   - Identifier, Property: references to bound names and their properties
//   - StringLiteral, IntLiteral, BoolLiteral: literal values
//   - Param: a query parameter placeholder
//   - Comparison: a binary predicate (=, <>, <, >, <=, >=, =~, IN)
//   - And, Or, Not: boolean combinators
//   - FunctionCall: a function invocation such as count(n)
//   - Node, Path: graph patterns (see pattern.go)
//   - Raw: an escape hatch rendering verbatim text
type Expression interface {
	render(sb *strings.Builder)

	exprNode() // Marker method - seals interface to this package
}

// Identifier references a name bound earlier in the statement.
type Identifier string

func (e Identifier) render(sb *strings.Builder) {
	sb.WriteString(string(e))
}

func (Identifier) exprNode() {}

// Property references a property of a bound identifier, e.g. n.age.
type Property struct {
	Owner Identifier
	Name  string
}

func (e Property) render(sb *strings.Builder) {
	e.Owner.render(sb)
	sb.WriteString(".")
	sb.WriteString(e.Name)
}

func (Property) exprNode() {}

// StringLiteral renders as a double-quoted Cypher string with backslash
// escaping for quotes and backslashes.
type StringLiteral string

func (e StringLiteral) render(sb *strings.Builder) {
	sb.WriteString("\"")
	for _, r := range string(e) {
		switch r {
		case '"', '\\':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteString("\"")
}

func (StringLiteral) exprNode() {}

// IntLiteral renders as a decimal integer.
type IntLiteral int64

func (e IntLiteral) render(sb *strings.Builder) {
	sb.WriteString(strconv.FormatInt(int64(e), 10))
}

func (IntLiteral) exprNode() {}

// BoolLiteral renders as true or false.
type BoolLiteral bool

func (e BoolLiteral) render(sb *strings.Builder) {
	sb.WriteString(strconv.FormatBool(bool(e)))
}

func (BoolLiteral) exprNode() {}

// Param is a query parameter placeholder, rendered as $name. The value is
// supplied at execution time, outside this package's scope.
type Param string

func (e Param) render(sb *strings.Builder) {
	sb.WriteString("$")
	sb.WriteString(string(e))
}

func (Param) exprNode() {}

// CompareOp is the operator of a Comparison predicate.
type CompareOp string

const (
	OpEq     CompareOp = "="
	OpNe     CompareOp = "<>"
	OpLt     CompareOp = "<"
	OpGt     CompareOp = ">"
	OpLte    CompareOp = "<="
	OpGte    CompareOp = ">="
	OpRegexp CompareOp = "=~"
	OpIn     CompareOp = " IN "
)

// Comparison is a binary predicate over two expressions.
type Comparison struct {
	Left  Expression
	Op    CompareOp
	Right Expression
}

func (e *Comparison) render(sb *strings.Builder) {
	e.Left.render(sb)
	sb.WriteString(string(e.Op))
	e.Right.render(sb)
}

func (*Comparison) exprNode() {}

// And is a conjunction of predicates, rendered as (a AND b AND ...).
// WHERE merging produces And nodes.
type And struct {
	Operands []Expression
}

func (e *And) render(sb *strings.Builder) {
	sb.WriteString("(")
	renderList(sb, e.Operands, " AND ")
	sb.WriteString(")")
}

func (*And) exprNode() {}

// Or is a disjunction of predicates, rendered as (a OR b OR ...).
type Or struct {
	Operands []Expression
}

func (e *Or) render(sb *strings.Builder) {
	sb.WriteString("(")
	renderList(sb, e.Operands, " OR ")
	sb.WriteString(")")
}

func (*Or) exprNode() {}

// Xor is an exclusive disjunction of predicates, rendered as (a XOR b XOR ...).
type Xor struct {
	Operands []Expression
}

func (e *Xor) render(sb *strings.Builder) {
	sb.WriteString("(")
	renderList(sb, e.Operands, " XOR ")
	sb.WriteString(")")
}

func (*Xor) exprNode() {}

// Not negates a predicate, rendered as NOT(x).
type Not struct {
	Operand Expression
}

func (e *Not) render(sb *strings.Builder) {
	sb.WriteString("NOT(")
	e.Operand.render(sb)
	sb.WriteString(")")
}

func (*Not) exprNode() {}

// FunctionCall renders as name(arg,arg,...).
type FunctionCall struct {
	Name string
	Args []Expression
}

func (e *FunctionCall) render(sb *strings.Builder) {
	sb.WriteString(e.Name)
	sb.WriteString("(")
	renderList(sb, e.Args, ",")
	sb.WriteString(")")
}

func (*FunctionCall) exprNode() {}

// Raw renders verbatim text. It is the escape hatch for Cypher fragments
// the typed expression tree does not model; the text is emitted as-is,
// never parsed.
type Raw string

func (e Raw) render(sb *strings.Builder) {
	sb.WriteString(string(e))
}

func (Raw) exprNode() {}
