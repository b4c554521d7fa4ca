package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPageCommand() *cobra.Command {
	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "Read a page with its glossary",
	}

	pageCmd.AddCommand(
		newPageShowCommand(),
		newPageWordsCommand(),
		newPageReportCommand(),
	)
	return pageCmd
}

func newPageShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <page>",
		Short: "Show a page's text and its meanings in reading order",
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
			db, service, _, err := openReader(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			page, err := service.Page(cmd.Context(), pageNumber)
			if err != nil {
				return fmt.Errorf("service.Page() > %w", err)
			}
			if page == nil {
				return fmt.Errorf("page %d is not in the local data. Run `ghareeb datasync apply` first", pageNumber)
			}

			out := cmd.OutOrStdout()
			title := color.New(color.FgCyan, color.Bold)
			if _, err := title.Fprintf(out, "Page %d", page.Number); err != nil {
				return err
			}
			if page.Text.SurahName != "" {
				if _, err := title.Fprintf(out, " (%s)", page.Text.SurahName); err != nil {
					return err
				}
			}
			fmt.Fprintln(out)
			for _, line := range page.Text.Lines() {
				fmt.Fprintln(out, line)
			}

			fmt.Fprintln(out)
			green := color.New(color.FgGreen)
			for i, item := range page.Sequence {
				if _, err := green.Fprintf(out, "%d. %s", i+1, item.Entry.WordText); err != nil {
					return err
				}
				fmt.Fprintf(out, " %s\n", item.Entry.Meaning)
			}
			return nil
		},
	}
}

func newPageWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <page>",
		Short: "List a page's meaning sequence with positions",
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
			db, service, _, err := openReader(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			page, err := service.Page(cmd.Context(), pageNumber)
			if err != nil {
				return fmt.Errorf("service.Page() > %w", err)
			}
			if page == nil {
				return fmt.Errorf("page %d is not in the local data", pageNumber)
			}

			out := cmd.OutOrStdout()
			for i, item := range page.Sequence {
				fmt.Fprintf(out, "%d\t%s\tline %d token %d\t%s\t%s\n",
					i+1, item.Entry.UniqueKey, item.Line+1, item.Token, item.Entry.WordText, item.Entry.Meaning)
			}
			return nil
		},
	}
}

func newPageReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <page>",
		Short: "Show which glossary entries matched and which did not",
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
			db, service, _, err := openReader(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := service.Report(cmd.Context(), pageNumber)
			if err != nil {
				return fmt.Errorf("service.Report() > %w", err)
			}
			if report == nil {
				return fmt.Errorf("page %d is not in the local data", pageNumber)
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			red := color.New(color.FgRed)

			fmt.Fprintf(out, "Page %d: %d matched, %d unmatched\n",
				report.PageNumber, len(report.Matched), len(report.Unmatched))
			for _, entry := range report.Matched {
				if _, err := green.Fprintf(out, "  matched   %s %s\n", entry.UniqueKey, entry.WordText); err != nil {
					return err
				}
			}
			for _, unmatched := range report.Unmatched {
				if _, err := red.Fprintf(out, "  unmatched %s %s", unmatched.Entry.UniqueKey, unmatched.Entry.WordText); err != nil {
					return err
				}
				if unmatched.NearestToken != "" {
					fmt.Fprintf(out, " (nearest %q, %.2f)", unmatched.NearestToken, unmatched.Similarity)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
