// Package export renders a page's meaning sequence as a printable meaning
// sheet, in markdown and optionally PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/mushafapp/ghareeb/internal/reader"
)

// Markdown renders a page's meaning sheet: the page text followed by the
// meaning sequence in final display order.
func Markdown(page *reader.Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Page %d", page.Number)
	if page.Text.SurahName != "" {
		fmt.Fprintf(&b, " (%s)", page.Text.SurahName)
	}
	b.WriteString("\n\n")

	for _, line := range page.Text.Lines() {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	b.WriteString("\n## Meanings\n\n")

	if len(page.Sequence) == 0 {
		b.WriteString("_No glossary entries on this page._\n")
		return b.String()
	}

	b.WriteString("| # | Word | Meaning |\n")
	b.WriteString("|---|------|---------|\n")
	for i, item := range page.Sequence {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, item.Entry.WordText, item.Entry.Meaning)
	}
	return b.String()
}

// WriteMarkdown writes a page's meaning sheet to dir as page-<n>.md and
// returns the file path.
func WriteMarkdown(page *reader.Page, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("page-%d.md", page.Number))
	if err := os.WriteFile(path, []byte(Markdown(page)), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a meaning-sheet markdown file to PDF next to
// it and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
