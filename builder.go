package cypherdsl

// Builder is the fluent construction layer over a Statement. Each method
// validates its arguments, constructs a clause, and admits it via
// Statement.Add.
//
// Validation failures are sticky: the first invalid call records its error,
// leaves the statement in its last valid state, and turns every subsequent
// call into a no-op. Check Err or Statement at the end of the chain.
type Builder struct {
	stmt *Statement
	err  error
}

// Start begins a statement with a START clause.
func Start(items ...Expression) *Builder {
	b := &Builder{stmt: NewStatement()}
	return b.add(&StartClause{Items: items}, checkExprs(items, "start items"))
}

// Match begins a statement with a MATCH clause.
func Match(patterns ...Expression) *Builder {
	b := &Builder{stmt: NewStatement()}
	return b.add(&MatchClause{Patterns: patterns}, checkExprs(patterns, "match patterns"))
}

// Create begins a statement with a CREATE clause.
func Create(patterns ...Expression) *Builder {
	b := &Builder{stmt: NewStatement()}
	return b.add(&CreateClause{Patterns: patterns}, checkExprs(patterns, "create patterns"))
}

// Merge begins a statement with a MERGE clause.
func Merge(patterns ...Expression) *Builder {
	b := &Builder{stmt: NewStatement()}
	return b.add(&MergeClause{Patterns: patterns}, checkExprs(patterns, "merge patterns"))
}

// Unwind begins a statement with an UNWIND clause.
func Unwind(list Expression, as string) *Builder {
	b := &Builder{stmt: NewStatement()}
	if err := checkExpr(list, "unwind list"); err != nil {
		b.err = err
		return b
	}
	return b.add(&UnwindClause{List: list, As: as}, checkName(as, "unwind alias"))
}

// add admits a clause unless the builder already failed or the guard err is set.
func (b *Builder) add(c Clause, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	if err := b.stmt.Add(c); err != nil {
		b.err = err
	}
	return b
}

// Match appends a MATCH clause.
func (b *Builder) Match(patterns ...Expression) *Builder {
	return b.add(&MatchClause{Patterns: patterns}, checkExprs(patterns, "match patterns"))
}

// OptionalMatch appends an OPTIONAL MATCH clause.
func (b *Builder) OptionalMatch(patterns ...Expression) *Builder {
	return b.add(&MatchClause{Optional: true, Patterns: patterns}, checkExprs(patterns, "match patterns"))
}

// Where appends a WHERE clause. A Where immediately following another Where
// merges into it as a conjunction; with any other clause in between, both
// WHERE clauses render separately.
func (b *Builder) Where(condition Expression) *Builder {
	return b.add(&WhereClause{Condition: condition}, checkExpr(condition, "where condition"))
}

// Create appends a CREATE clause.
func (b *Builder) Create(patterns ...Expression) *Builder {
	return b.add(&CreateClause{Patterns: patterns}, checkExprs(patterns, "create patterns"))
}

// Merge appends a MERGE clause.
func (b *Builder) Merge(patterns ...Expression) *Builder {
	return b.add(&MergeClause{Patterns: patterns}, checkExprs(patterns, "merge patterns"))
}

// Set appends a SET clause.
func (b *Builder) Set(items ...SetItem) *Builder {
	if b.err != nil {
		return b
	}
	if len(items) == 0 {
		b.err = &ArgumentError{Name: "set items", Message: "may not be empty"}
		return b
	}
	for _, item := range items {
		if item.Target == nil || item.Value == nil {
			b.err = &ArgumentError{Name: "set items", Message: "may not contain nil"}
			return b
		}
	}
	return b.add(&SetClause{Items: items}, nil)
}

// Remove appends a REMOVE clause.
func (b *Builder) Remove(items ...Expression) *Builder {
	return b.add(&RemoveClause{Items: items}, checkExprs(items, "remove items"))
}

// Delete appends a DELETE clause.
func (b *Builder) Delete(items ...Expression) *Builder {
	return b.add(&DeleteClause{Items: items}, checkExprs(items, "delete items"))
}

// With appends a WITH clause.
func (b *Builder) With(items ...Expression) *Builder {
	return b.add(&WithClause{Items: items}, checkExprs(items, "with items"))
}

// Unwind appends an UNWIND clause.
func (b *Builder) Unwind(list Expression, as string) *Builder {
	if b.err != nil {
		return b
	}
	if err := checkExpr(list, "unwind list"); err != nil {
		b.err = err
		return b
	}
	return b.add(&UnwindClause{List: list, As: as}, checkName(as, "unwind alias"))
}

// Returns appends a RETURN clause.
func (b *Builder) Returns(items ...Expression) *Builder {
	return b.add(&ReturnClause{Items: items}, checkExprs(items, "return items"))
}

// ReturnsDistinct appends a RETURN DISTINCT clause.
func (b *Builder) ReturnsDistinct(items ...Expression) *Builder {
	return b.add(&ReturnClause{Distinct: true, Items: items}, checkExprs(items, "return items"))
}

// OrderBy appends an ORDER BY clause with default sort direction.
func (b *Builder) OrderBy(items ...Expression) *Builder {
	if err := checkExprs(items, "order by items"); err != nil {
		return b.add(nil, err)
	}
	sorted := make([]OrderByItem, len(items))
	for i, e := range items {
		sorted[i] = OrderByItem{Expr: e}
	}
	return b.add(&OrderByClause{Items: sorted}, nil)
}

// OrderByItems appends an ORDER BY clause with explicit directions.
func (b *Builder) OrderByItems(items ...OrderByItem) *Builder {
	if b.err != nil {
		return b
	}
	if len(items) == 0 {
		b.err = &ArgumentError{Name: "order by items", Message: "may not be empty"}
		return b
	}
	for _, item := range items {
		if item.Expr == nil {
			b.err = &ArgumentError{Name: "order by items", Message: "may not contain nil"}
			return b
		}
	}
	return b.add(&OrderByClause{Items: items}, nil)
}

// Skip appends a SKIP clause.
func (b *Builder) Skip(count int64) *Builder {
	return b.add(&SkipClause{Count: IntLiteral(count)}, nil)
}

// Limit appends a LIMIT clause.
func (b *Builder) Limit(count int64) *Builder {
	return b.add(&LimitClause{Count: IntLiteral(count)}, nil)
}

// Continue branches the statement under construction into an independent
// builder sharing this builder's clause prefix. Further calls on either
// builder do not affect the other.
func (b *Builder) Continue() *Builder {
	return &Builder{stmt: b.stmt.Clone(), err: b.err}
}

// Err returns the first validation error encountered, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Statement returns the built statement, or the first validation error.
func (b *Builder) Statement() (*Statement, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.stmt, nil
}

// String renders the statement built so far with the default dialect
// version, ignoring any recorded validation error.
func (b *Builder) String() string {
	return b.stmt.String()
}
