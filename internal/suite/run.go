package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphkit/cypherdsl"
	"github.com/graphkit/cypherdsl/internal/cueload"
)

// Result holds the outcome of running a suite.
type Result struct {
	Suite    string
	Passed   int
	Failures []Failure
}

// OK reports whether every case passed.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Failure describes one failed case.
type Failure struct {
	Query   string
	Message string
	Got     string
	Want    string
}

func (f Failure) String() string {
	if f.Want != "" {
		return fmt.Sprintf("%s: %s\n  got:  %s\n  want: %s", f.Query, f.Message, f.Got, f.Want)
	}
	return fmt.Sprintf("%s: %s", f.Query, f.Message)
}

// Run compiles the suite's spec directory and checks every case.
//
// Spec-level load errors fail the run; per-case mismatches are collected in
// the result so one failing query does not hide the rest.
func Run(s *Suite) (*Result, error) {
	loaded, errs := cueload.LoadDir(s.SpecsDir())
	if loaded == nil {
		return nil, fmt.Errorf("load specs: %w", errs[0])
	}

	result := &Result{Suite: s.Name}

	// Compile errors fail the cases that reference the broken query; they
	// are reported per case below via the missing-query path.
	compiled := make(map[string]*cypherdsl.Statement, len(loaded.Queries))
	for _, q := range loaded.Queries {
		compiled[q.Name] = q.Statement
	}
	compileErrs := make(map[string]error)
	for _, err := range errs {
		var ce *cueload.CompileError
		if errors.As(err, &ce) {
			compileErrs[ce.Query] = ce
		}
	}

	for _, c := range s.Cases {
		stmt, ok := compiled[c.Query]
		if !ok {
			msg := "query not found in specs"
			if cerr, found := compileErrs[c.Query]; found {
				msg = cerr.Error()
			}
			result.Failures = append(result.Failures, Failure{Query: c.Query, Message: msg})
			continue
		}

		got := RenderCase(stmt, c)
		if c.Want != "" && got != c.Want {
			result.Failures = append(result.Failures, Failure{
				Query:   c.Query,
				Message: "rendered text mismatch",
				Got:     got,
				Want:    c.Want,
			})
			continue
		}

		result.Passed++
	}

	return result, nil
}

// RenderCase renders a statement with the case's dialect version.
func RenderCase(stmt *cypherdsl.Statement, c Case) string {
	var sb strings.Builder
	if c.Version == "" {
		stmt.RenderDefault(&sb)
	} else {
		stmt.Render(&sb, c.Version)
	}
	return sb.String()
}
