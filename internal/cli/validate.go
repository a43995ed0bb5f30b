package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphkit/cypherdsl/internal/cueload"
)

// ValidationSummary describes the outcome of validating a spec directory.
type ValidationSummary struct {
	Valid      bool     `json:"valid"`
	QueryCount int      `json:"query_count"`
	FileCount  int      `json:"file_count"`
	Errors     []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <specs-dir>",
		Short: "Check that all query specs in a directory compile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], rootOpts)
		},
	}
}

func runValidate(cmd *cobra.Command, specsDir string, rootOpts *RootOptions) error {
	formatter := commandFormatter(cmd, rootOpts)

	formatter.VerboseLog("validating specs in %s", specsDir)
	result, errs := cueload.LoadDir(specsDir)

	summary := ValidationSummary{Valid: len(errs) == 0}
	if result != nil {
		summary.QueryCount = len(result.Queries)
		summary.FileCount = result.FileCount
	}
	for _, e := range errs {
		summary.Errors = append(summary.Errors, e.Error())
	}

	if !summary.Valid {
		formatter.Error(loadErrorCode(errs), joinErrors(errs), summary)
		return WrapExitError(ExitFailure, "specs failed to validate", errs[0])
	}

	if rootOpts.Format == "json" {
		return formatter.Success(summary)
	}
	return formatter.Success(fmt.Sprintf("✓ All specs valid: %d queries in %d files", summary.QueryCount, summary.FileCount))
}
