package cueload

import (
	"cuelang.org/go/cue"

	"github.com/graphkit/cypherdsl"
)

// queryFields lists the recognized spec fields in canonical clause order.
// Admission order follows this list, so where fragments always land
// consecutively and merge into one conjunction.
var queryFields = []string{
	"start",
	"match",
	"optionalMatch",
	"unwind",
	"where",
	"create",
	"merge",
	"set",
	"remove",
	"delete",
	"with",
	"return",
	"orderBy",
	"skip",
	"limit",
}

var knownField = func() map[string]bool {
	m := make(map[string]bool, len(queryFields))
	for _, f := range queryFields {
		m[f] = true
	}
	return m
}()

// CompileQuery parses a CUE query struct into a statement.
//
// The CUE value should be the query struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`query: findFriends: { ... }`)
//	stmt, err := CompileQuery("findFriends", v.LookupPath(cue.ParsePath("query.findFriends")))
func CompileQuery(name string, v cue.Value) (*cypherdsl.Statement, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(name, err)
	}

	// Reject unknown fields up front - typos silently dropping a clause
	// would change query semantics.
	iter, err := v.Fields()
	if err != nil {
		return nil, formatCUEError(name, err)
	}
	for iter.Next() {
		if !knownField[iter.Label()] {
			return nil, &CompileError{
				Query:   name,
				Field:   iter.Label(),
				Message: "unknown query field",
				Pos:     iter.Value().Pos(),
			}
		}
	}

	c := &queryCompiler{name: name, stmt: cypherdsl.NewStatement()}
	for _, field := range queryFields {
		fieldVal := v.LookupPath(cue.ParsePath(field))
		if !fieldVal.Exists() {
			continue
		}
		if err := c.compileField(field, fieldVal); err != nil {
			return nil, err
		}
	}

	if c.stmt.Len() == 0 {
		return nil, &CompileError{
			Query:   name,
			Field:   "query",
			Message: "at least one clause is required",
			Pos:     v.Pos(),
		}
	}

	return c.stmt, nil
}

type queryCompiler struct {
	name string
	stmt *cypherdsl.Statement
}

func (c *queryCompiler) compileField(field string, v cue.Value) error {
	switch field {
	case "start":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.StartClause{Items: items}
		})
	case "match":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.MatchClause{Patterns: items}
		})
	case "optionalMatch":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.MatchClause{Optional: true, Patterns: items}
		})
	case "unwind":
		return c.compileUnwind(v)
	case "where":
		return c.compileWhere(v)
	case "create":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.CreateClause{Patterns: items}
		})
	case "merge":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.MergeClause{Patterns: items}
		})
	case "set":
		return c.compileSet(v)
	case "remove":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.RemoveClause{Items: items}
		})
	case "delete":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.DeleteClause{Items: items}
		})
	case "with":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.WithClause{Items: items}
		})
	case "return":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			return &cypherdsl.ReturnClause{Items: items}
		})
	case "orderBy":
		return c.fragments(field, v, func(items []cypherdsl.Expression) cypherdsl.Clause {
			sorted := make([]cypherdsl.OrderByItem, len(items))
			for i, e := range items {
				sorted[i] = cypherdsl.OrderByItem{Expr: e}
			}
			return &cypherdsl.OrderByClause{Items: sorted}
		})
	case "skip":
		count, err := c.intField(field, v)
		if err != nil {
			return err
		}
		return c.add(field, v, &cypherdsl.SkipClause{Count: cypherdsl.IntLiteral(count)})
	case "limit":
		count, err := c.intField(field, v)
		if err != nil {
			return err
		}
		return c.add(field, v, &cypherdsl.LimitClause{Count: cypherdsl.IntLiteral(count)})
	default:
		return &CompileError{Query: c.name, Field: field, Message: "unknown query field", Pos: v.Pos()}
	}
}

// fragments parses a list of verbatim text fragments into one clause.
func (c *queryCompiler) fragments(field string, v cue.Value, build func([]cypherdsl.Expression) cypherdsl.Clause) error {
	texts, err := c.stringList(field, v)
	if err != nil {
		return err
	}
	items := make([]cypherdsl.Expression, len(texts))
	for i, text := range texts {
		items[i] = cypherdsl.Raw(text)
	}
	return c.add(field, v, build(items))
}

// compileWhere admits one WHERE clause per fragment; the statement core
// merges them into a single conjunction since they are consecutive.
func (c *queryCompiler) compileWhere(v cue.Value) error {
	texts, err := c.stringList("where", v)
	if err != nil {
		return err
	}
	for _, text := range texts {
		if err := c.add("where", v, &cypherdsl.WhereClause{Condition: cypherdsl.Raw(text)}); err != nil {
			return err
		}
	}
	return nil
}

func (c *queryCompiler) compileUnwind(v cue.Value) error {
	listVal := v.LookupPath(cue.ParsePath("list"))
	if !listVal.Exists() {
		return &CompileError{Query: c.name, Field: "unwind.list", Message: "list is required", Pos: v.Pos()}
	}
	list, err := listVal.String()
	if err != nil {
		return formatCUEError(c.name, err)
	}

	asVal := v.LookupPath(cue.ParsePath("as"))
	if !asVal.Exists() {
		return &CompileError{Query: c.name, Field: "unwind.as", Message: "as is required", Pos: v.Pos()}
	}
	as, err := asVal.String()
	if err != nil {
		return formatCUEError(c.name, err)
	}

	return c.add("unwind", v, &cypherdsl.UnwindClause{List: cypherdsl.Raw(list), As: as})
}

func (c *queryCompiler) compileSet(v cue.Value) error {
	iter, err := v.List()
	if err != nil {
		return formatCUEError(c.name, err)
	}

	var items []cypherdsl.SetItem
	for iter.Next() {
		itemVal := iter.Value()

		targetVal := itemVal.LookupPath(cue.ParsePath("target"))
		if !targetVal.Exists() {
			return &CompileError{Query: c.name, Field: "set.target", Message: "target is required", Pos: itemVal.Pos()}
		}
		target, err := targetVal.String()
		if err != nil {
			return formatCUEError(c.name, err)
		}

		valueVal := itemVal.LookupPath(cue.ParsePath("value"))
		if !valueVal.Exists() {
			return &CompileError{Query: c.name, Field: "set.value", Message: "value is required", Pos: itemVal.Pos()}
		}
		value, err := valueVal.String()
		if err != nil {
			return formatCUEError(c.name, err)
		}

		items = append(items, cypherdsl.SetItem{
			Target: cypherdsl.Raw(target),
			Value:  cypherdsl.Raw(value),
		})
	}
	if len(items) == 0 {
		return &CompileError{Query: c.name, Field: "set", Message: "may not be empty", Pos: v.Pos()}
	}

	return c.add("set", v, &cypherdsl.SetClause{Items: items})
}

func (c *queryCompiler) stringList(field string, v cue.Value) ([]string, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(c.name, err)
	}

	var texts []string
	for iter.Next() {
		text, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(c.name, err)
		}
		if text == "" {
			return nil, &CompileError{
				Query:   c.name,
				Field:   field,
				Message: "fragment may not be empty",
				Pos:     iter.Value().Pos(),
			}
		}
		texts = append(texts, text)
	}
	if len(texts) == 0 {
		return nil, &CompileError{Query: c.name, Field: field, Message: "may not be empty", Pos: v.Pos()}
	}

	return texts, nil
}

func (c *queryCompiler) intField(field string, v cue.Value) (int64, error) {
	count, err := v.Int64()
	if err != nil {
		return 0, formatCUEError(c.name, err)
	}
	if count < 0 {
		return 0, &CompileError{Query: c.name, Field: field, Message: "may not be negative", Pos: v.Pos()}
	}
	return count, nil
}

func (c *queryCompiler) add(field string, v cue.Value, clause cypherdsl.Clause) error {
	if err := c.stmt.Add(clause); err != nil {
		return &CompileError{Query: c.name, Field: field, Message: err.Error(), Pos: v.Pos()}
	}
	return nil
}
