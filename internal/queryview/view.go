// Package queryview holds the presentation-facing selection and search state
// over one extracted library snapshot. The snapshot itself is never mutated;
// all projections are derived on demand and preserve the snapshot's order.
package queryview

import (
	"strings"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// View maintains the current book and annotation selection plus two
// independent case-insensitive substring filters. Annotation selection is
// scoped to the current book selection: selecting a new set of books clears
// it synchronously.
type View struct {
	books []entities.Book

	selectedBooks       map[string]bool // keyed by asset id
	selectedAnnotations map[string]bool // keyed by synthetic annotation id

	bookFilter       string
	annotationFilter string
}

// NewView wraps an extracted library snapshot.
func NewView(library *entities.Library) *View {
	return &View{
		books:               library.Books,
		selectedBooks:       make(map[string]bool),
		selectedAnnotations: make(map[string]bool),
	}
}

// SelectBooks replaces the book selection with the given asset ids and clears
// any annotation selection. Stale cross-selection is a correctness bug, so
// the clearing is an unconditional side effect of this call.
func (v *View) SelectBooks(assetIDs []string) {
	v.selectedBooks = make(map[string]bool, len(assetIDs))
	for _, id := range assetIDs {
		v.selectedBooks[id] = true
	}
	v.selectedAnnotations = make(map[string]bool)
}

// SelectAnnotations replaces the annotation selection with the given
// annotation ids.
func (v *View) SelectAnnotations(ids []string) {
	v.selectedAnnotations = make(map[string]bool, len(ids))
	for _, id := range ids {
		v.selectedAnnotations[id] = true
	}
}

// SetBookFilter sets the substring filter applied over book title and author.
func (v *View) SetBookFilter(text string) {
	v.bookFilter = text
}

// SetAnnotationFilter sets the substring filter applied over annotation text
// and note.
func (v *View) SetAnnotationFilter(text string) {
	v.annotationFilter = text
}

// Books returns the filtered book list, preserving snapshot order. The
// result is always a fresh slice; callers cannot reach the snapshot
// through it.
func (v *View) Books() []entities.Book {
	if v.bookFilter == "" {
		books := make([]entities.Book, len(v.books))
		copy(books, v.books)
		return books
	}

	needle := strings.ToLower(v.bookFilter)
	var filtered []entities.Book
	for _, book := range v.books {
		if containsFold(book.Title, needle) || containsFold(book.Author, needle) {
			filtered = append(filtered, book)
		}
	}
	return filtered
}

// SelectedBooks returns the currently selected books in snapshot order.
func (v *View) SelectedBooks() []entities.Book {
	var selected []entities.Book
	for _, book := range v.books {
		if v.selectedBooks[book.AssetID] {
			selected = append(selected, book)
		}
	}
	return selected
}

// Annotations returns the annotations of the selected books, filtered by the
// annotation filter, in snapshot order.
func (v *View) Annotations() []entities.AnnotationRecord {
	var needle string
	if v.annotationFilter != "" {
		needle = strings.ToLower(v.annotationFilter)
	}

	var annotations []entities.AnnotationRecord
	for _, book := range v.books {
		if !v.selectedBooks[book.AssetID] {
			continue
		}
		for _, annotation := range book.Annotations {
			if needle != "" &&
				!strings.Contains(strings.ToLower(annotation.SelectedText), needle) &&
				!containsFold(annotation.Note, needle) {
				continue
			}
			annotations = append(annotations, annotation)
		}
	}
	return annotations
}

// SelectedAnnotations returns the selected annotations of the selected books,
// each paired with its owning book, in snapshot order.
func (v *View) SelectedAnnotations() []entities.SelectedAnnotation {
	var selected []entities.SelectedAnnotation
	for i := range v.books {
		book := &v.books[i]
		if !v.selectedBooks[book.AssetID] {
			continue
		}
		for _, annotation := range book.Annotations {
			if v.selectedAnnotations[annotation.ID] {
				selected = append(selected, entities.SelectedAnnotation{Book: book, Annotation: annotation})
			}
		}
	}
	return selected
}

func containsFold(value *string, lowerNeedle string) bool {
	if value == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*value), lowerNeedle)
}
