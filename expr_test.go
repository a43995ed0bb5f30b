package cypherdsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func renderExpr(e Expression) string {
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

func TestExpression_Rendering(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"identifier", Identifier("n"), "n"},
		{"property", Property{Owner: "n", Name: "age"}, "n.age"},
		{"string literal", StringLiteral("Tobias"), `"Tobias"`},
		{"string literal escaping", StringLiteral(`say "hi"\now`), `"say \"hi\"\\now"`},
		{"int literal", IntLiteral(42), "42"},
		{"negative int literal", IntLiteral(-7), "-7"},
		{"bool literal", BoolLiteral(true), "true"},
		{"param", Param("name"), "$name"},
		{"raw", Raw("n.age > 30"), "n.age > 30"},
		{
			"comparison",
			&Comparison{Left: Property{Owner: "n", Name: "age"}, Op: OpGte, Right: IntLiteral(18)},
			"n.age>=18",
		},
		{
			"in comparison",
			&Comparison{Left: Property{Owner: "n", Name: "name"}, Op: OpIn, Right: Param("names")},
			"n.name IN $names",
		},
		{
			"regexp comparison",
			&Comparison{Left: Property{Owner: "n", Name: "name"}, Op: OpRegexp, Right: StringLiteral("Tob.*")},
			`n.name=~"Tob.*"`,
		},
		{
			"and",
			&And{Operands: []Expression{Raw("a"), Raw("b")}},
			"(a AND b)",
		},
		{
			"or",
			&Or{Operands: []Expression{Raw("a"), Raw("b"), Raw("c")}},
			"(a OR b OR c)",
		},
		{
			"xor",
			&Xor{Operands: []Expression{Raw("a"), Raw("b")}},
			"(a XOR b)",
		},
		{
			"not",
			&Not{Operand: Raw("a")},
			"NOT(a)",
		},
		{
			"nested boolean",
			&And{Operands: []Expression{
				&Or{Operands: []Expression{Raw("a"), Raw("b")}},
				&Not{Operand: Raw("c")},
			}},
			"((a OR b) AND NOT(c))",
		},
		{
			"function call",
			&FunctionCall{Name: "count", Args: []Expression{Identifier("n")}},
			"count(n)",
		},
		{
			"function call no args",
			&FunctionCall{Name: "timestamp"},
			"timestamp()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderExpr(tt.expr))
		})
	}
}

func TestPattern_Rendering(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"bare node", Node{}, "()"},
		{"named node", Node{Name: "n"}, "(n)"},
		{"labeled node", Node{Name: "n", Labels: []string{"Person", "Admin"}}, "(n:Person:Admin)"},
		{"anonymous labeled node", Node{Labels: []string{"Person"}}, "(:Person)"},
		{
			"outgoing hop",
			Path{
				Start: Node{Name: "a"},
				Hops:  []Hop{{Direction: Outgoing, Types: []string{"KNOWS"}, To: Node{Name: "b"}}},
			},
			"(a)-[:KNOWS]->(b)",
		},
		{
			"incoming hop with binding",
			Path{
				Start: Node{Name: "a"},
				Hops:  []Hop{{Direction: Incoming, Name: "r", Types: []string{"KNOWS"}, To: Node{Name: "b"}}},
			},
			"(a)<-[r:KNOWS]-(b)",
		},
		{
			"undirected bare hop",
			Path{
				Start: Node{Name: "a"},
				Hops:  []Hop{{Direction: Both, To: Node{Name: "b"}}},
			},
			"(a)--(b)",
		},
		{
			"multiple relationship types",
			Path{
				Start: Node{Name: "a"},
				Hops:  []Hop{{Direction: Outgoing, Types: []string{"KNOWS", "WORKS_WITH"}, To: Node{Name: "b"}}},
			},
			"(a)-[:KNOWS|WORKS_WITH]->(b)",
		},
		{
			"multi hop",
			Path{
				Start: Node{Name: "a", Labels: []string{"Person"}},
				Hops: []Hop{
					{Direction: Outgoing, Types: []string{"KNOWS"}, To: Node{Name: "b"}},
					{Direction: Outgoing, Types: []string{"KNOWS"}, To: Node{Name: "c", Labels: []string{"Person"}}},
				},
			},
			"(a:Person)-[:KNOWS]->(b)-[:KNOWS]->(c:Person)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderExpr(tt.expr))
		})
	}
}

func TestExpression_SealedInterface(t *testing.T) {
	exprs := []Expression{
		Identifier("n"),
		Property{Owner: "n", Name: "age"},
		StringLiteral("x"),
		IntLiteral(1),
		BoolLiteral(false),
		Param("p"),
		Raw("raw"),
		&Comparison{Left: Identifier("a"), Op: OpEq, Right: IntLiteral(1)},
		&And{},
		&Or{},
		&Xor{},
		&Not{Operand: Raw("x")},
		&FunctionCall{Name: "count"},
		Node{},
		Path{},
	}

	for _, e := range exprs {
		// Marker method exists and renders are callable on every kind
		e.exprNode()
		assert.NotNil(t, e)
	}
}
