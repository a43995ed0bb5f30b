package cueload

import (
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileOne(t *testing.T, src, name string) (string, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())

	stmt, err := CompileQuery(name, v.LookupPath(cue.ParsePath("query."+name)))
	if err != nil {
		return "", err
	}
	return stmt.String(), nil
}

func TestCompileQueryBasic(t *testing.T) {
	got, err := compileOne(t, `
		query: findFriends: {
			match:  ["(n:Person)-[:KNOWS]->(m)"]
			where:  ["n.name = $name"]
			return: ["m"]
		}
	`, "findFriends")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 MATCH (n:Person)-[:KNOWS]->(m) WHERE n.name = $name RETURN m", got)
}

func TestCompileQueryWhereFragmentsMerge(t *testing.T) {
	got, err := compileOne(t, `
		query: adults: {
			match:  ["(n:Person)"]
			where:  ["n.age > 30", "n.active = true"]
			return: ["n"]
		}
	`, "adults")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 MATCH (n:Person) WHERE (n.age > 30 AND n.active = true) RETURN n", got)
}

func TestCompileQueryCanonicalOrder(t *testing.T) {
	// Fields are admitted in canonical clause order regardless of source order
	got, err := compileOne(t, `
		query: paged: {
			limit:   5
			return:  ["n"]
			match:   ["(n:Person)"]
			orderBy: ["n.name"]
			skip:    10
		}
	`, "paged")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 MATCH (n:Person) RETURN n ORDER BY n.name SKIP 10 LIMIT 5", got)
}

func TestCompileQueryUpdates(t *testing.T) {
	got, err := compileOne(t, `
		query: upsert: {
			merge: ["(n:Person)"]
			set: [
				{target: "n.name", value: "$name"},
				{target: "n.seen", value: "true"},
			]
			return: ["n"]
		}
	`, "upsert")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 MERGE (n:Person) SET n.name=$name,n.seen=true RETURN n", got)
}

func TestCompileQueryUnwind(t *testing.T) {
	got, err := compileOne(t, `
		query: ingest: {
			unwind: {list: "$names", as: "name"}
			merge:  ["(n:Person)"]
			set: [{target: "n.name", value: "name"}]
		}
	`, "ingest")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 UNWIND $names AS name MERGE (n:Person) SET n.name=name", got)
}

func TestCompileQueryOptionalMatch(t *testing.T) {
	got, err := compileOne(t, `
		query: withCars: {
			match:         ["(n:Person)"]
			optionalMatch: ["(n)-[:OWNS]->(c:Car)"]
			return:        ["n", "c"]
		}
	`, "withCars")

	require.NoError(t, err)
	assert.Equal(t, "CYPHER 3.5 MATCH (n:Person) OPTIONAL MATCH (n)-[:OWNS]->(c:Car) RETURN n,c", got)
}

func TestCompileQueryErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		query   string
		wantErr string
	}{
		{
			"unknown field",
			`query: bad: { match: ["(n)"], retrun: ["n"] }`,
			"bad",
			"unknown query field",
		},
		{
			"empty query",
			`query: bad: {}`,
			"bad",
			"at least one clause is required",
		},
		{
			"empty fragment",
			`query: bad: { match: [""] }`,
			"bad",
			"fragment may not be empty",
		},
		{
			"empty fragment list",
			`query: bad: { match: [] }`,
			"bad",
			"may not be empty",
		},
		{
			"negative limit",
			`query: bad: { match: ["(n)"], limit: -1 }`,
			"bad",
			"may not be negative",
		},
		{
			"unwind missing alias",
			`query: bad: { unwind: {list: "$xs"} }`,
			"bad",
			"as is required",
		},
		{
			"set missing value",
			`query: bad: { set: [{target: "n.a"}] }`,
			"bad",
			"value is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileOne(t, tt.src, tt.query)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	src := `
query: findFriends: {
	match:  ["(n:Person)-[:KNOWS]->(m)"]
	where:  ["n.name = $name"]
	return: ["m"]
}

query: adults: {
	match:  ["(n:Person)"]
	where:  ["n.age > 30"]
	return: ["n"]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queries.cue"), []byte(src), 0o644))

	result, errs := LoadDir(dir)
	require.Empty(t, errs)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Queries, 2)

	// Sorted by name
	assert.Equal(t, "adults", result.Queries[0].Name)
	assert.Equal(t, "findFriends", result.Queries[1].Name)
	assert.Equal(t, "CYPHER 3.5 MATCH (n:Person) WHERE n.age > 30 RETURN n",
		result.Queries[0].Statement.String())
}

func TestLoadDir_CollectsErrors(t *testing.T) {
	dir := t.TempDir()
	src := `
query: good: {
	match:  ["(n)"]
	return: ["n"]
}

query: broken: {
	match: []
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queries.cue"), []byte(src), 0o644))

	result, errs := LoadDir(dir)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "broken")

	// The broken query does not hide the good one
	require.NotNil(t, result)
	require.Len(t, result.Queries, 1)
	assert.Equal(t, "good", result.Queries[0].Name)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	result, errs := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Nil(t, result)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDir_NoCUEFiles(t *testing.T) {
	result, errs := LoadDir(t.TempDir())
	assert.Nil(t, result)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadDir_NoQueriesDeclared(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "empty.cue"), []byte(`metadata: owner: "graph-team"`), 0o644)
	require.NoError(t, err)

	result, errs := LoadDir(dir)
	require.NotNil(t, result)
	assert.Empty(t, result.Queries)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNoQueries, loadErr.Code)
}
