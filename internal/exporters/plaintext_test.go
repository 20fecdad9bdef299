package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noteharvester/noteharvester/internal/entities"
)

func TestExportPlainText(t *testing.T) {
	book := &entities.Book{BookRecord: entities.BookRecord{AssetID: "a"}}

	t.Run("renders quote with note line when present", func(t *testing.T) {
		out := ExportPlainText(selection(
			item(book, entities.AnnotationRecord{SelectedText: "a quote", Note: strp("a thought")}),
		))

		assert.Equal(t, "a quote\nNote: a thought", out)
	})

	t.Run("omits the note line when absent or empty", func(t *testing.T) {
		out := ExportPlainText(selection(
			item(book, entities.AnnotationRecord{SelectedText: "no note"}),
			item(book, entities.AnnotationRecord{SelectedText: "empty note", Note: strp("")}),
		))

		assert.Equal(t, "no note\n\nempty note", out)
	})

	t.Run("separates entries with a blank line", func(t *testing.T) {
		out := ExportPlainText(selection(
			item(book, entities.AnnotationRecord{SelectedText: "first"}),
			item(book, entities.AnnotationRecord{SelectedText: "second", Note: strp("noted")}),
			item(book, entities.AnnotationRecord{SelectedText: "third"}),
		))

		assert.Equal(t, "first\n\nsecond\nNote: noted\n\nthird", out)
	})

	t.Run("applies no escaping", func(t *testing.T) {
		out := ExportPlainText(selection(
			item(book, entities.AnnotationRecord{SelectedText: `He said "hi", didn't he?`}),
		))

		assert.Equal(t, `He said "hi", didn't he?`, out)
	})

	t.Run("empty selection yields empty payload", func(t *testing.T) {
		assert.Equal(t, "", ExportPlainText(nil))
	})
}
