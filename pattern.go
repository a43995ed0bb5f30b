package cypherdsl

import "strings"

// Node is a node pattern, rendered as (name:Label1:Label2). Name and labels
// are both optional; a bare () matches any node.
type Node struct {
	Name   Identifier
	Labels []string
}

func (e Node) render(sb *strings.Builder) {
	sb.WriteString("(")
	sb.WriteString(string(e.Name))
	for _, label := range e.Labels {
		sb.WriteString(":")
		sb.WriteString(label)
	}
	sb.WriteString(")")
}

func (Node) exprNode() {}

// Direction is the direction of a relationship hop.
type Direction int

const (
	Both Direction = iota
	Outgoing
	Incoming
)

// Hop is one relationship step in a path pattern: the relationship detail
// plus the node it leads to.
type Hop struct {
	Direction Direction
	Name      Identifier // optional relationship binding
	Types     []string   // relationship types, OR-ed with |
	To        Node
}

func (h Hop) render(sb *strings.Builder) {
	if h.Direction == Incoming {
		sb.WriteString("<-")
	} else {
		sb.WriteString("-")
	}
	if h.Name != "" || len(h.Types) > 0 {
		sb.WriteString("[")
		sb.WriteString(string(h.Name))
		for i, t := range h.Types {
			if i == 0 {
				sb.WriteString(":")
			} else {
				sb.WriteString("|")
			}
			sb.WriteString(t)
		}
		sb.WriteString("]")
	}
	if h.Direction == Outgoing {
		sb.WriteString("->")
	} else {
		sb.WriteString("-")
	}
	h.To.render(sb)
}

// Path is a graph pattern: a start node followed by relationship hops,
// rendered as (a:Person)-[r:KNOWS]->(b).
type Path struct {
	Start Node
	Hops  []Hop
}

func (e Path) render(sb *strings.Builder) {
	e.Start.render(sb)
	for _, h := range e.Hops {
		h.render(sb)
	}
}

func (Path) exprNode() {}
