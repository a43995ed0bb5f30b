package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphkit/cypherdsl"
	"github.com/graphkit/cypherdsl/internal/cueload"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	Query   string
	Dialect string
	Output  string
}

// RenderedQuery is one rendered statement in command output.
type RenderedQuery struct {
	Name   string `json:"name"`
	Cypher string `json:"cypher"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <specs-dir>",
		Short: "Render query specs to Cypher text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, rootOpts)
		},
	}

	cmd.Flags().StringVar(&opts.Query, "query", "", "render only the named query")
	cmd.Flags().StringVar(&opts.Dialect, "dialect", cypherdsl.DefaultVersion, "Cypher version for the statement prefix")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, specsDir string, opts *RenderOptions, rootOpts *RootOptions) error {
	formatter := commandFormatter(cmd, rootOpts)

	formatter.VerboseLog("loading specs from %s", specsDir)
	result, errs := cueload.LoadDir(specsDir)
	if len(errs) > 0 {
		formatter.Error(loadErrorCode(errs), joinErrors(errs), nil)
		return WrapExitError(ExitFailure, "specs failed to compile", errs[0])
	}
	formatter.VerboseLog("loaded %d queries from %d files", len(result.Queries), result.FileCount)

	queries := result.Queries
	if opts.Query != "" {
		queries = nil
		for _, q := range result.Queries {
			if q.Name == opts.Query {
				queries = append(queries, q)
			}
		}
		if len(queries) == 0 {
			msg := fmt.Sprintf("query not found: %s", opts.Query)
			formatter.Error(ErrCodeInvalidInput, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
	}

	rendered := make([]RenderedQuery, 0, len(queries))
	for _, q := range queries {
		var sb strings.Builder
		q.Statement.Render(&sb, opts.Dialect)
		rendered = append(rendered, RenderedQuery{Name: q.Name, Cypher: sb.String()})
	}

	if opts.Output != "" {
		var sb strings.Builder
		for _, r := range rendered {
			sb.WriteString(r.Cypher)
			sb.WriteString("\n")
		}
		if err := os.WriteFile(opts.Output, []byte(sb.String()), 0o644); err != nil {
			formatter.Error(ErrCodeIOError, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
		return formatter.Success(fmt.Sprintf("wrote %d queries to %s", len(rendered), opts.Output))
	}

	if rootOpts.Format == "json" {
		return formatter.Success(rendered)
	}
	for _, r := range rendered {
		if opts.Query != "" {
			fmt.Fprintln(formatter.Writer, r.Cypher)
		} else {
			fmt.Fprintf(formatter.Writer, "%s: %s\n", r.Name, r.Cypher)
		}
	}
	return nil
}

func joinErrors(errs []error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// loadErrorCode picks the CLI error code for a failed spec load: a missing
// directory is reported distinctly from specs that fail to compile.
func loadErrorCode(errs []error) string {
	var loadErr *cueload.LoadError
	if len(errs) > 0 && errors.As(errs[0], &loadErr) && loadErr.Code == cueload.ErrCodeNotFound {
		return ErrCodeSpecsNotFound
	}
	return ErrCodeCompileFailed
}
