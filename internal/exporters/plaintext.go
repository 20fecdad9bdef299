package exporters

import (
	"strings"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// ExportPlainText renders the selection as a raw clipboard payload: each
// annotation's quote, followed by a "Note:" line when a note exists, entries
// separated by a blank line. No quoting or escaping is applied.
func ExportPlainText(items []entities.SelectedAnnotation) string {
	entries := make([]string, 0, len(items))
	for _, item := range items {
		entry := item.Annotation.SelectedText
		if item.Annotation.Note != nil && *item.Annotation.Note != "" {
			entry += "\nNote: " + *item.Annotation.Note
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n\n")
}
