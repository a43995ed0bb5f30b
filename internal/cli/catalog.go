package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphkit/cypherdsl/internal/catalog"
	"github.com/graphkit/cypherdsl/internal/cueload"
)

// CatalogEntry is one stored statement in command output.
type CatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rendered    string `json:"rendered"`
	ContentHash string `json:"content_hash"`
	CreatedAt   string `json:"created_at"`
}

func toCatalogEntry(e catalog.Entry) CatalogEntry {
	return CatalogEntry{
		ID:          e.ID,
		Name:        e.Name,
		Rendered:    e.Rendered,
		ContentHash: e.ContentHash,
		CreatedAt:   e.CreatedAt,
	}
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local statement catalog",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "cypherdsl.db", "catalog database file")

	cmd.AddCommand(newCatalogSaveCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogShowCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogDeleteCommand(rootOpts, &dbPath))

	return cmd
}

func newCatalogSaveCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "save <specs-dir> <query>",
		Short: "Compile a query spec and store the statement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := commandFormatter(cmd, rootOpts)
			specsDir, queryName := args[0], args[1]

			result, errs := cueload.LoadDir(specsDir)
			if len(errs) > 0 {
				formatter.Error(loadErrorCode(errs), joinErrors(errs), nil)
				return WrapExitError(ExitFailure, "specs failed to compile", errs[0])
			}

			var stmt *cueload.Query
			for i := range result.Queries {
				if result.Queries[i].Name == queryName {
					stmt = &result.Queries[i]
					break
				}
			}
			if stmt == nil {
				msg := fmt.Sprintf("query not found: %s", queryName)
				formatter.Error(ErrCodeInvalidInput, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}

			name := queryName
			if as != "" {
				name = as
			}

			cat, err := catalog.Open(*dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to open catalog", err)
			}
			defer cat.Close()

			entry, err := cat.Save(cmd.Context(), name, stmt.Statement)
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitFailure, "failed to save statement", err)
			}

			formatter.VerboseLog("saved %s as %s", queryName, entry.ID)
			if rootOpts.Format == "json" {
				return formatter.Success(toCatalogEntry(entry))
			}
			return formatter.Success(fmt.Sprintf("saved %s: %s", entry.Name, entry.Rendered))
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "store under a different name")
	return cmd
}

func newCatalogListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := commandFormatter(cmd, rootOpts)

			cat, err := catalog.Open(*dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to open catalog", err)
			}
			defer cat.Close()

			entries, err := cat.List(cmd.Context())
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitFailure, "failed to list statements", err)
			}

			if rootOpts.Format == "json" {
				out := make([]CatalogEntry, 0, len(entries))
				for _, e := range entries {
					out = append(out, toCatalogEntry(e))
				}
				return formatter.Success(out)
			}
			for _, e := range entries {
				fmt.Fprintf(formatter.Writer, "%s\t%s\n", e.Name, e.Rendered)
			}
			return nil
		},
	}
}

func newCatalogShowCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a stored statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := commandFormatter(cmd, rootOpts)

			cat, err := catalog.Open(*dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to open catalog", err)
			}
			defer cat.Close()

			entry, err := cat.GetByName(cmd.Context(), args[0])
			if errors.Is(err, catalog.ErrNotFound) {
				msg := fmt.Sprintf("statement not found: %s", args[0])
				formatter.Error(ErrCodeInvalidInput, msg, nil)
				return NewExitError(ExitFailure, msg)
			}
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitFailure, "failed to read statement", err)
			}

			if rootOpts.Format == "json" {
				return formatter.Success(toCatalogEntry(entry))
			}
			return formatter.Success(entry.Rendered)
		},
	}
}

func newCatalogDeleteCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := commandFormatter(cmd, rootOpts)

			cat, err := catalog.Open(*dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to open catalog", err)
			}
			defer cat.Close()

			if err := cat.Delete(cmd.Context(), args[0]); err != nil {
				formatter.Error(ErrCodeCatalogError, err.Error(), nil)
				return WrapExitError(ExitFailure, "failed to delete statement", err)
			}
			return formatter.Success(fmt.Sprintf("deleted %s", args[0]))
		},
	}
}
