package cypherdsl

import (
	"encoding/json"
	"fmt"
)

// JSON serialization for transport and disk. Each clause and expression is
// encoded as a kind-tagged envelope so a statement round-trips structurally
// without ever parsing Cypher text.

// envelopeVersion is the serialization schema version.
const envelopeVersion = "1"

type statementEnvelope struct {
	Version string           `json:"version"`
	Clauses []clauseEnvelope `json:"clauses"`
}

type clauseEnvelope struct {
	Kind      string          `json:"kind"`
	Optional  bool            `json:"optional,omitempty"`
	Distinct  bool            `json:"distinct,omitempty"`
	Items     []exprEnvelope  `json:"items,omitempty"`
	Sets      []setEnvelope   `json:"sets,omitempty"`
	Orders    []orderEnvelope `json:"orders,omitempty"`
	Condition *exprEnvelope   `json:"condition,omitempty"`
	List      *exprEnvelope   `json:"list,omitempty"`
	As        string          `json:"as,omitempty"`
	Count     *exprEnvelope   `json:"count,omitempty"`
}

type setEnvelope struct {
	Target exprEnvelope `json:"target"`
	Value  exprEnvelope `json:"value"`
}

type orderEnvelope struct {
	Expr  exprEnvelope `json:"expr"`
	Order string       `json:"order,omitempty"`
}

type exprEnvelope struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Int      int64          `json:"int,omitempty"`
	Bool     bool           `json:"bool,omitempty"`
	Owner    string         `json:"owner,omitempty"`
	Op       string         `json:"op,omitempty"`
	Left     *exprEnvelope  `json:"left,omitempty"`
	Right    *exprEnvelope  `json:"right,omitempty"`
	Operands []exprEnvelope `json:"operands,omitempty"`
	Args     []exprEnvelope `json:"args,omitempty"`
	Labels   []string       `json:"labels,omitempty"`
	Start    *exprEnvelope  `json:"start,omitempty"`
	Hops     []hopEnvelope  `json:"hops,omitempty"`
}

type hopEnvelope struct {
	Direction int          `json:"direction"`
	Name      string       `json:"name,omitempty"`
	Types     []string     `json:"types,omitempty"`
	To        exprEnvelope `json:"to"`
}

// MarshalJSON encodes the statement as a versioned envelope of kind-tagged
// clauses.
func (s *Statement) MarshalJSON() ([]byte, error) {
	env := statementEnvelope{
		Version: envelopeVersion,
		Clauses: make([]clauseEnvelope, 0, len(s.clauses)),
	}
	for i, c := range s.clauses {
		ce, err := encodeClause(c)
		if err != nil {
			return nil, fmt.Errorf("clause[%d]: %w", i, err)
		}
		env.Clauses = append(env.Clauses, ce)
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes a statement envelope produced by MarshalJSON.
// The decoded statement renders identically to the original.
func (s *Statement) UnmarshalJSON(data []byte) error {
	var env statementEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Version != envelopeVersion {
		return fmt.Errorf("unsupported statement envelope version: %q", env.Version)
	}
	clauses := make([]Clause, 0, len(env.Clauses))
	for i, ce := range env.Clauses {
		c, err := decodeClause(ce)
		if err != nil {
			return fmt.Errorf("clause[%d]: %w", i, err)
		}
		clauses = append(clauses, c)
	}
	s.clauses = clauses
	return nil
}

func encodeClause(c Clause) (clauseEnvelope, error) {
	switch cl := c.(type) {
	case *StartClause:
		items, err := encodeExprs(cl.Items)
		return clauseEnvelope{Kind: "start", Items: items}, err
	case *MatchClause:
		items, err := encodeExprs(cl.Patterns)
		return clauseEnvelope{Kind: "match", Optional: cl.Optional, Items: items}, err
	case *WhereClause:
		cond, err := encodeExpr(cl.Condition)
		return clauseEnvelope{Kind: "where", Condition: &cond}, err
	case *CreateClause:
		items, err := encodeExprs(cl.Patterns)
		return clauseEnvelope{Kind: "create", Items: items}, err
	case *MergeClause:
		items, err := encodeExprs(cl.Patterns)
		return clauseEnvelope{Kind: "merge", Items: items}, err
	case *SetClause:
		sets := make([]setEnvelope, 0, len(cl.Items))
		for _, item := range cl.Items {
			target, err := encodeExpr(item.Target)
			if err != nil {
				return clauseEnvelope{}, err
			}
			value, err := encodeExpr(item.Value)
			if err != nil {
				return clauseEnvelope{}, err
			}
			sets = append(sets, setEnvelope{Target: target, Value: value})
		}
		return clauseEnvelope{Kind: "set", Sets: sets}, nil
	case *RemoveClause:
		items, err := encodeExprs(cl.Items)
		return clauseEnvelope{Kind: "remove", Items: items}, err
	case *DeleteClause:
		items, err := encodeExprs(cl.Items)
		return clauseEnvelope{Kind: "delete", Items: items}, err
	case *WithClause:
		items, err := encodeExprs(cl.Items)
		return clauseEnvelope{Kind: "with", Items: items}, err
	case *ReturnClause:
		items, err := encodeExprs(cl.Items)
		return clauseEnvelope{Kind: "return", Distinct: cl.Distinct, Items: items}, err
	case *OrderByClause:
		orders := make([]orderEnvelope, 0, len(cl.Items))
		for _, item := range cl.Items {
			expr, err := encodeExpr(item.Expr)
			if err != nil {
				return clauseEnvelope{}, err
			}
			orders = append(orders, orderEnvelope{Expr: expr, Order: string(item.Order)})
		}
		return clauseEnvelope{Kind: "orderBy", Orders: orders}, nil
	case *SkipClause:
		count, err := encodeExpr(cl.Count)
		return clauseEnvelope{Kind: "skip", Count: &count}, err
	case *LimitClause:
		count, err := encodeExpr(cl.Count)
		return clauseEnvelope{Kind: "limit", Count: &count}, err
	case *UnwindClause:
		list, err := encodeExpr(cl.List)
		return clauseEnvelope{Kind: "unwind", List: &list, As: cl.As}, err
	default:
		return clauseEnvelope{}, fmt.Errorf("unsupported clause type: %T", c)
	}
}

func decodeClause(ce clauseEnvelope) (Clause, error) {
	switch ce.Kind {
	case "start":
		items, err := decodeExprs(ce.Items)
		return &StartClause{Items: items}, err
	case "match":
		items, err := decodeExprs(ce.Items)
		return &MatchClause{Optional: ce.Optional, Patterns: items}, err
	case "where":
		if ce.Condition == nil {
			return nil, fmt.Errorf("where clause missing condition")
		}
		cond, err := decodeExpr(*ce.Condition)
		return &WhereClause{Condition: cond}, err
	case "create":
		items, err := decodeExprs(ce.Items)
		return &CreateClause{Patterns: items}, err
	case "merge":
		items, err := decodeExprs(ce.Items)
		return &MergeClause{Patterns: items}, err
	case "set":
		items := make([]SetItem, 0, len(ce.Sets))
		for _, se := range ce.Sets {
			target, err := decodeExpr(se.Target)
			if err != nil {
				return nil, err
			}
			value, err := decodeExpr(se.Value)
			if err != nil {
				return nil, err
			}
			items = append(items, SetItem{Target: target, Value: value})
		}
		return &SetClause{Items: items}, nil
	case "remove":
		items, err := decodeExprs(ce.Items)
		return &RemoveClause{Items: items}, err
	case "delete":
		items, err := decodeExprs(ce.Items)
		return &DeleteClause{Items: items}, err
	case "with":
		items, err := decodeExprs(ce.Items)
		return &WithClause{Items: items}, err
	case "return":
		items, err := decodeExprs(ce.Items)
		return &ReturnClause{Distinct: ce.Distinct, Items: items}, err
	case "orderBy":
		items := make([]OrderByItem, 0, len(ce.Orders))
		for _, oe := range ce.Orders {
			expr, err := decodeExpr(oe.Expr)
			if err != nil {
				return nil, err
			}
			items = append(items, OrderByItem{Expr: expr, Order: SortOrder(oe.Order)})
		}
		return &OrderByClause{Items: items}, nil
	case "skip":
		if ce.Count == nil {
			return nil, fmt.Errorf("skip clause missing count")
		}
		count, err := decodeExpr(*ce.Count)
		return &SkipClause{Count: count}, err
	case "limit":
		if ce.Count == nil {
			return nil, fmt.Errorf("limit clause missing count")
		}
		count, err := decodeExpr(*ce.Count)
		return &LimitClause{Count: count}, err
	case "unwind":
		if ce.List == nil {
			return nil, fmt.Errorf("unwind clause missing list")
		}
		list, err := decodeExpr(*ce.List)
		return &UnwindClause{List: list, As: ce.As}, err
	default:
		return nil, fmt.Errorf("unsupported clause kind: %q", ce.Kind)
	}
}

func encodeExprs(exprs []Expression) ([]exprEnvelope, error) {
	out := make([]exprEnvelope, 0, len(exprs))
	for _, e := range exprs {
		env, err := encodeExpr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, nil
}

func decodeExprs(envs []exprEnvelope) ([]Expression, error) {
	out := make([]Expression, 0, len(envs))
	for _, env := range envs {
		e, err := decodeExpr(env)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func encodeExpr(e Expression) (exprEnvelope, error) {
	switch ex := e.(type) {
	case Identifier:
		return exprEnvelope{Kind: "identifier", Text: string(ex)}, nil
	case Property:
		return exprEnvelope{Kind: "property", Owner: string(ex.Owner), Text: ex.Name}, nil
	case StringLiteral:
		return exprEnvelope{Kind: "string", Text: string(ex)}, nil
	case IntLiteral:
		return exprEnvelope{Kind: "int", Int: int64(ex)}, nil
	case BoolLiteral:
		return exprEnvelope{Kind: "bool", Bool: bool(ex)}, nil
	case Param:
		return exprEnvelope{Kind: "param", Text: string(ex)}, nil
	case Raw:
		return exprEnvelope{Kind: "raw", Text: string(ex)}, nil
	case *Comparison:
		left, err := encodeExpr(ex.Left)
		if err != nil {
			return exprEnvelope{}, err
		}
		right, err := encodeExpr(ex.Right)
		if err != nil {
			return exprEnvelope{}, err
		}
		return exprEnvelope{Kind: "compare", Op: string(ex.Op), Left: &left, Right: &right}, nil
	case *And:
		operands, err := encodeExprs(ex.Operands)
		return exprEnvelope{Kind: "and", Operands: operands}, err
	case *Or:
		operands, err := encodeExprs(ex.Operands)
		return exprEnvelope{Kind: "or", Operands: operands}, err
	case *Xor:
		operands, err := encodeExprs(ex.Operands)
		return exprEnvelope{Kind: "xor", Operands: operands}, err
	case *Not:
		operand, err := encodeExpr(ex.Operand)
		return exprEnvelope{Kind: "not", Left: &operand}, err
	case *FunctionCall:
		args, err := encodeExprs(ex.Args)
		return exprEnvelope{Kind: "function", Text: ex.Name, Args: args}, err
	case Node:
		return exprEnvelope{Kind: "node", Text: string(ex.Name), Labels: ex.Labels}, nil
	case Path:
		start := exprEnvelope{Kind: "node", Text: string(ex.Start.Name), Labels: ex.Start.Labels}
		hops := make([]hopEnvelope, 0, len(ex.Hops))
		for _, h := range ex.Hops {
			hops = append(hops, hopEnvelope{
				Direction: int(h.Direction),
				Name:      string(h.Name),
				Types:     h.Types,
				To:        exprEnvelope{Kind: "node", Text: string(h.To.Name), Labels: h.To.Labels},
			})
		}
		return exprEnvelope{Kind: "path", Start: &start, Hops: hops}, nil
	default:
		return exprEnvelope{}, fmt.Errorf("unsupported expression type: %T", e)
	}
}

func decodeExpr(env exprEnvelope) (Expression, error) {
	switch env.Kind {
	case "identifier":
		return Identifier(env.Text), nil
	case "property":
		return Property{Owner: Identifier(env.Owner), Name: env.Text}, nil
	case "string":
		return StringLiteral(env.Text), nil
	case "int":
		return IntLiteral(env.Int), nil
	case "bool":
		return BoolLiteral(env.Bool), nil
	case "param":
		return Param(env.Text), nil
	case "raw":
		return Raw(env.Text), nil
	case "compare":
		if env.Left == nil || env.Right == nil {
			return nil, fmt.Errorf("compare expression missing operand")
		}
		left, err := decodeExpr(*env.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(*env.Right)
		if err != nil {
			return nil, err
		}
		return &Comparison{Left: left, Op: CompareOp(env.Op), Right: right}, nil
	case "and":
		operands, err := decodeExprs(env.Operands)
		return &And{Operands: operands}, err
	case "or":
		operands, err := decodeExprs(env.Operands)
		return &Or{Operands: operands}, err
	case "xor":
		operands, err := decodeExprs(env.Operands)
		return &Xor{Operands: operands}, err
	case "not":
		if env.Left == nil {
			return nil, fmt.Errorf("not expression missing operand")
		}
		operand, err := decodeExpr(*env.Left)
		return &Not{Operand: operand}, err
	case "function":
		args, err := decodeExprs(env.Args)
		return &FunctionCall{Name: env.Text, Args: args}, err
	case "node":
		return Node{Name: Identifier(env.Text), Labels: env.Labels}, nil
	case "path":
		if env.Start == nil {
			return nil, fmt.Errorf("path expression missing start node")
		}
		start := Node{Name: Identifier(env.Start.Text), Labels: env.Start.Labels}
		hops := make([]Hop, 0, len(env.Hops))
		for _, he := range env.Hops {
			hops = append(hops, Hop{
				Direction: Direction(he.Direction),
				Name:      Identifier(he.Name),
				Types:     he.Types,
				To:        Node{Name: Identifier(he.To.Text), Labels: he.To.Labels},
			})
		}
		return Path{Start: start, Hops: hops}, nil
	default:
		return nil, fmt.Errorf("unsupported expression kind: %q", env.Kind)
	}
}
