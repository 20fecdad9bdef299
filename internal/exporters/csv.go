package exporters

import (
	"fmt"
	"strings"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// CSVMode selects one of the two historical CSV dialects. Both are still in
// use by downstream consumers, so neither supersedes the other.
type CSVMode string

const (
	// CSVModeBook emits "Author;Title;Highlight;Note" with ';' separators.
	CSVModeBook CSVMode = "book"
	// CSVModeAnnotation emits "Author,Book Title,Quote,Comment" with ','
	// separators.
	CSVModeAnnotation CSVMode = "annotation"
)

// ExportCSV serializes the selection as CSV text, one row per annotation, in
// input order. Every field is double-quoted with inner quotes doubled; the
// format is a bit-exact contract, which is why this does not go through
// encoding/csv (it only quotes fields that need it).
func ExportCSV(items []entities.SelectedAnnotation, mode CSVMode) (string, error) {
	var header, separator string
	switch mode {
	case CSVModeBook:
		header, separator = "Author;Title;Highlight;Note", ";"
	case CSVModeAnnotation:
		header, separator = "Author,Book Title,Quote,Comment", ","
	default:
		return "", fmt.Errorf("unknown csv mode: %s", mode)
	}

	var builder strings.Builder
	builder.WriteString(header)
	builder.WriteByte('\n')

	for _, item := range items {
		note := ""
		if item.Annotation.Note != nil {
			note = *item.Annotation.Note
		}

		fields := []string{
			item.Book.DisplayAuthor(),
			item.Book.DisplayTitle(),
			item.Annotation.SelectedText,
			note,
		}
		for i, field := range fields {
			fields[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}

		builder.WriteString(strings.Join(fields, separator))
		builder.WriteByte('\n')
	}

	return builder.String(), nil
}
