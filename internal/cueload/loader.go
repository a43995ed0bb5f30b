package cueload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/graphkit/cypherdsl"
)

// Load error codes.
const (
	ErrCodeNotFound    = "SPECS_NOT_FOUND"
	ErrCodeNoFiles     = "NO_CUE_FILES"
	ErrCodeNoQueries   = "NO_QUERIES"
	ErrCodeLoadFailed  = "CUE_LOAD_FAILED"
	ErrCodeBuildFailed = "CUE_BUILD_FAILED"
)

// LoadError represents an error that occurred while loading a spec directory.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Query is one compiled query from a spec directory.
type Query struct {
	Name      string
	Statement *cypherdsl.Statement
}

// Result contains the queries loaded from a spec directory.
type Result struct {
	Queries   []Query
	FileCount int
}

// LoadDir loads and compiles all CUE query specs in a directory.
//
// Queries are returned sorted by name for deterministic output. Compile
// errors are collected per query rather than failing fast, so one broken
// query does not hide the rest.
func LoadDir(dir string) (*Result, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("specs directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing specs directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &Result{FileCount: len(cueFiles)}
	var errs []error

	queriesVal := value.LookupPath(cue.ParsePath("query"))
	if queriesVal.Exists() {
		iter, iterErr := queriesVal.Fields()
		if iterErr != nil {
			return result, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("iterating queries: %v", iterErr)}}
		}
		for iter.Next() {
			name := iter.Label()
			stmt, compileErr := CompileQuery(name, iter.Value())
			if compileErr != nil {
				errs = append(errs, compileErr)
				continue
			}
			result.Queries = append(result.Queries, Query{Name: name, Statement: stmt})
		}
	}

	// CUE files with no query block would otherwise "validate" vacuously.
	if len(result.Queries) == 0 && len(errs) == 0 {
		return result, []error{&LoadError{Code: ErrCodeNoQueries, Message: fmt.Sprintf("no queries declared in %s", dir)}}
	}

	sort.Slice(result.Queries, func(i, j int) bool {
		return result.Queries[i].Name < result.Queries[j].Name
	})

	return result, errs
}

// findCUEFiles returns all .cue files directly in dir.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".cue") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
