// package formatter provides functions to export library data to various formats (CSV, Markdown, plain text, YAML)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/shared"
	"gopkg.in/yaml.v3"
)

// Format is a supported export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a user supplied format name to a [Format].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q (use csv, markdown, txt or yaml)", shared.ErrInvalidFlag, name)
	}
}

// Extension returns the default file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	case FormatYAML:
		return ".yaml"
	default:
		return ".csv"
	}
}

// ExportToCSV converts a Library to CSV format with columns: ISBN, Title, Authors, Publisher, Published, Language, Pages
func ExportToCSV(library *models.Library) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ISBN", "Title", "Authors", "Publisher", "Published", "Language", "Pages"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, v := range library.Volumes {
		record := []string{
			v.ISBN.String(),
			v.Title,
			strings.Join(v.Authors, "; "),
			v.Publisher,
			v.PublishedDate,
			v.Language,
			strconv.FormatInt(v.Pages, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Library to Markdown format, one section per volume.
//
// Volumes with a cover reference include it as an image.
func ExportToMarkdown(library *models.Library, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Library"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Volumes**: %d\n\n", library.Len()))

	for i, v := range library.Volumes {
		buf.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, displayTitle(v)))

		if v.Image != "" {
			buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", v.Image))
		}

		buf.WriteString(fmt.Sprintf("- **ISBN**: %s\n", v.ISBN))
		if len(v.Authors) > 0 {
			buf.WriteString(fmt.Sprintf("- **Authors**: %s\n", strings.Join(v.Authors, ", ")))
		}
		if v.Publisher != "" {
			buf.WriteString(fmt.Sprintf("- **Publisher**: %s\n", v.Publisher))
		}
		if v.PublishedDate != "" {
			buf.WriteString(fmt.Sprintf("- **Published**: %s\n", v.PublishedDate))
		}
		if v.Pages > 0 {
			buf.WriteString(fmt.Sprintf("- **Pages**: %d\n", v.Pages))
		}
		buf.WriteString("\n")

		if v.Description != "" {
			buf.WriteString(v.Description + "\n\n")
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Library to plain text format
func ExportToText(library *models.Library) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Volumes: %d\n\n", library.Len()))

	for i, v := range library.Volumes {
		line := fmt.Sprintf("%d. %s", i+1, displayTitle(v))
		if len(v.Authors) > 0 {
			line += " - " + strings.Join(v.Authors, ", ")
		}
		buf.WriteString(fmt.Sprintf("%s [%s]\n", line, v.ISBN))
	}

	return buf.Bytes(), nil
}

// ExportToYAML converts a Library to YAML, ISBNs written as plain scalars
func ExportToYAML(library *models.Library) ([]byte, error) {
	data, err := yaml.Marshal(library)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

// Export renders the library in the given format.
func Export(library *models.Library, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return ExportToCSV(library)
	case FormatMarkdown:
		return ExportToMarkdown(library, "")
	case FormatText:
		return ExportToText(library)
	case FormatYAML:
		return ExportToYAML(library)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
}

// WriteExport exports the library to a file.
//
// Defaults to library{ext} as the filename.
func WriteExport(library *models.Library, format Format, filepath string) (string, error) {
	if filepath == "" {
		filepath = "library" + format.Extension()
	}

	data, err := Export(library, format)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return filepath, nil
}

func displayTitle(v models.Volume) string {
	if v.Title == "" {
		return "(untitled)"
	}
	return v.Title
}
