package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphkit/cypherdsl/internal/suite"
)

// SuiteSummary describes the outcome of running a render suite.
type SuiteSummary struct {
	Suite    string   `json:"suite"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures,omitempty"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test <suite.yaml>",
		Short: "Run a render conformance suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, args[0], rootOpts)
		},
	}
}

func runTest(cmd *cobra.Command, suitePath string, rootOpts *RootOptions) error {
	formatter := commandFormatter(cmd, rootOpts)

	s, err := suite.Load(suitePath)
	if err != nil {
		formatter.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}

	formatter.VerboseLog("running suite %q (%d cases)", s.Name, len(s.Cases))
	result, err := suite.Run(s)
	if err != nil {
		formatter.Error(ErrCodeCompileFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "suite specs failed to compile", err)
	}

	summary := SuiteSummary{
		Suite:  result.Suite,
		Passed: result.Passed,
		Failed: len(result.Failures),
	}
	for _, f := range result.Failures {
		summary.Failures = append(summary.Failures, f.String())
	}

	if !result.OK() {
		formatter.Error(ErrCodeSuiteFailed, fmt.Sprintf("%d cases failed", summary.Failed), summary)
		return NewExitError(ExitFailure, fmt.Sprintf("suite %s: %d cases failed", summary.Suite, summary.Failed))
	}

	if rootOpts.Format == "json" {
		return formatter.Success(summary)
	}
	return formatter.Success(fmt.Sprintf("✓ Suite %s: %d passed", summary.Suite, summary.Passed))
}
