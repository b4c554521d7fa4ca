package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mushafapp/ghareeb/internal/override"
)

// ScopeFlag parses an override scope as a command line flag.
type ScopeFlag override.Scope

func (f *ScopeFlag) Set(value string) error {
	switch override.Scope(value) {
	case override.ScopeWholePage, override.ScopeLineRange, override.ScopeCustomSelection:
		*f = ScopeFlag(value)
		return nil
	}
	return fmt.Errorf("invalid value %q: must be one of whole_page, line_range, custom_selection", value)
}

func (f *ScopeFlag) String() string {
	return string(*f)
}

func (f *ScopeFlag) Type() string {
	return "scope"
}

func newOverrideCommand() *cobra.Command {
	overrideCmd := &cobra.Command{
		Use:   "override",
		Short: "Manage the local reading-order corrections",
	}

	overrideCmd.AddCommand(
		newOverrideSetCommand(),
		newOverrideDeleteCommand(),
		newOverrideListCommand(),
		newOverrideExportCommand(),
		newOverrideImportCommand(),
	)
	return overrideCmd
}

func newOverrideSetCommand() *cobra.Command {
	scope := ScopeFlag(override.ScopeWholePage)
	var lineStart, lineEnd int
	var selectionKeys []string
	var lockKeys []string
	var shiftAmount int
	var rankSpecs []string

	cmd := &cobra.Command{
		Use:   "set <page>",
		Short: "Save an order correction for a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageNumber, err := parsePageNumber(args[0])
			if err != nil {
				return err
			}

			op, err := buildOperation(lockKeys, shiftAmount, rankSpecs)
			if err != nil {
				return err
			}

			record := override.Override{
				PageNumber:    pageNumber,
				Scope:         override.Scope(scope),
				SelectionKeys: selectionKeys,
				Op:            op,
			}
			// The flags and `page words` output number lines from 1; the
			// stored override uses line indexes.
			if record.Scope == override.ScopeLineRange {
				record.LineStart = lineStart - 1
				record.LineEnd = lineEnd - 1
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
			if err != nil {
				return fmt.Errorf("override.NewYAMLRepository() > %w", err)
			}
			if err := repo.Save(record); err != nil {
				return fmt.Errorf("repo.Save() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s override for page %d\n", record.Op.Name(), pageNumber)
			return nil
		},
	}

	cmd.Flags().Var(&scope, "scope", "whole_page, line_range or custom_selection")
	cmd.Flags().IntVar(&lineStart, "line-start", 0, "first line of a line_range scope (1-based)")
	cmd.Flags().IntVar(&lineEnd, "line-end", 0, "last line of a line_range scope (1-based)")
	cmd.Flags().StringSliceVar(&selectionKeys, "selection", nil, "entry keys of a custom_selection scope")
	cmd.Flags().StringSliceVar(&lockKeys, "lock", nil, "entry keys in the exact order they must keep")
	cmd.Flags().IntVar(&shiftAmount, "shift", 0, "shift entry bindings by this many positions")
	cmd.Flags().StringSliceVar(&rankSpecs, "rank", nil, "key=rank pairs for rebuilding the order")
	return cmd
}

// buildOperation turns the op flags into the one operation they describe.
// Exactly one of --lock, --shift and --rank must be used.
func buildOperation(lockKeys []string, shiftAmount int, rankSpecs []string) (override.Operation, error) {
	used := 0
	if len(lockKeys) > 0 {
		used++
	}
	if shiftAmount != 0 {
		used++
	}
	if len(rankSpecs) > 0 {
		used++
	}
	if used != 1 {
		return nil, fmt.Errorf("exactly one of --lock, --shift and --rank is required")
	}

	switch {
	case len(lockKeys) > 0:
		return override.LockedOrder{Keys: lockKeys}, nil
	case shiftAmount != 0:
		return override.OffsetShift{Amount: shiftAmount}, nil
	default:
		ranks := make([]override.KeyRank, 0, len(rankSpecs))
		for _, spec := range rankSpecs {
			key, rankText, found := strings.Cut(spec, "=")
			if !found {
				return nil, fmt.Errorf("invalid rank %q: expected key=rank", spec)
			}
			rank, err := strconv.Atoi(rankText)
			if err != nil {
				return nil, fmt.Errorf("invalid rank %q: %w", spec, err)
			}
			ranks = append(ranks, override.KeyRank{Key: key, Rank: rank})
		}
		return override.RebuildIndices{Ranks: ranks}, nil
	}
}

func newOverrideDeleteCommand() *cobra.Command {
	scope := ScopeFlag(override.ScopeWholePage)

	cmd := &cobra.Command{
		Use:   "delete <page>",
		Short: "Delete a page's order correction for one scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageNumber, err := parsePageNumber(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
			if err != nil {
				return fmt.Errorf("override.NewYAMLRepository() > %w", err)
			}
			if err := repo.Delete(pageNumber, override.Scope(scope)); err != nil {
				return fmt.Errorf("repo.Delete() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s override for page %d\n", scope.String(), pageNumber)
			return nil
		},
	}

	cmd.Flags().Var(&scope, "scope", "whole_page, line_range or custom_selection")
	return cmd
}

func newOverrideListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [page]",
		Short: "List saved order corrections",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
			if err != nil {
				return fmt.Errorf("override.NewYAMLRepository() > %w", err)
			}

			var pages []int
			if len(args) == 1 {
				pageNumber, err := parsePageNumber(args[0])
				if err != nil {
					return err
				}
				pages = []int{pageNumber}
			} else {
				pages, err = repo.Pages()
				if err != nil {
					return fmt.Errorf("repo.Pages() > %w", err)
				}
			}

			out := cmd.OutOrStdout()
			for _, pageNumber := range pages {
				records, err := repo.FindByPage(pageNumber)
				if err != nil {
					return fmt.Errorf("repo.FindByPage() > %w", err)
				}
				for _, record := range records {
					fmt.Fprintf(out, "page %d\t%s\t%s\n", record.PageNumber, record.Scope, record.Op.Name())
				}
			}
			return nil
		},
	}
}

func newOverrideExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export every order correction into one bundle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
			if err != nil {
				return fmt.Errorf("override.NewYAMLRepository() > %w", err)
			}

			body, err := override.ExportBundle(repo)
			if err != nil {
				return fmt.Errorf("override.ExportBundle() > %w", err)
			}
			if err := os.WriteFile(args[0], body, 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported overrides to %s\n", args[0])
			return nil
		},
	}
}

func newOverrideImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bundle of order corrections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
			if err != nil {
				return fmt.Errorf("override.NewYAMLRepository() > %w", err)
			}

			result := override.ImportBundle(body, repo)
			if !result.Success {
				return fmt.Errorf("bundle rejected: %s", result.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d overrides\n", result.Imported)
			return nil
		},
	}
}
