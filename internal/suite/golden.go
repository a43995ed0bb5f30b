package suite

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/graphkit/cypherdsl"
	"github.com/graphkit/cypherdsl/internal/cueload"
)

// RunWithGolden compiles a suite's specs and compares each case's rendered
// text against a golden file. Golden files live in
// testdata/golden/{suite}_{query}.golden relative to the calling test's
// package.
//
// To regenerate golden files, run:
//
//	go test ./internal/suite -update
//
// Golden files serve as the source of truth for expected rendered text;
// explicit want values in the suite are checked by Run, not here.
func RunWithGolden(t *testing.T, s *Suite) error {
	t.Helper()

	loaded, errs := cueload.LoadDir(s.SpecsDir())
	if loaded == nil {
		return fmt.Errorf("load specs: %w", errs[0])
	}
	if len(errs) > 0 {
		return fmt.Errorf("compile specs: %w", errs[0])
	}

	compiled := make(map[string]*cypherdsl.Statement, len(loaded.Queries))
	for _, q := range loaded.Queries {
		compiled[q.Name] = q.Statement
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, c := range s.Cases {
		stmt, ok := compiled[c.Query]
		if !ok {
			return fmt.Errorf("query not found in specs: %s", c.Query)
		}
		g.Assert(t, s.Name+"_"+c.Query, []byte(RenderCase(stmt, c)))
	}

	return nil
}
