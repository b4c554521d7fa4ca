package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mushafapp/ghareeb/internal/export"
)

func newExportCommand() *cobra.Command {
	var toPDF bool

	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Export a page's meaning sheet as markdown, optionally PDF",
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

			markdownPath, err := export.WriteMarkdown(page, cfg.ExportsDirectory)
			if err != nil {
				return fmt.Errorf("export.WriteMarkdown() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", markdownPath)

			if toPDF {
				pdfPath, err := export.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("export.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toPDF, "pdf", false, "also convert the markdown sheet to PDF")
	return cmd
}
