package applebooks

import (
	"github.com/noteharvester/noteharvester/internal/entities"
)

// Correlate joins annotation records to their owning book by asset id and
// builds the Book aggregates. The two stores are maintained independently, so
// the join degrades by omission: orphaned annotations vanish, and books
// without any retained annotation are dropped. Correlation never fails.
//
// Single pass over books and annotations; annotation volume can be large
// relative to book count, so no per-book scan of the annotation list.
func Correlate(records []entities.BookRecord, annotations []entities.AnnotationRecord) []entities.Book {
	// Last write wins on duplicate asset ids across shards.
	index := make(map[string]entities.BookRecord, len(records))
	for _, record := range records {
		index[record.AssetID] = record
	}

	// Group annotations by asset id, preserving decode order within each
	// group and first-seen order across groups.
	groups := make(map[string][]entities.AnnotationRecord)
	var groupOrder []string
	for _, annotation := range annotations {
		if _, known := index[annotation.AssetID]; !known {
			continue // orphan
		}
		if _, seen := groups[annotation.AssetID]; !seen {
			groupOrder = append(groupOrder, annotation.AssetID)
		}
		groups[annotation.AssetID] = append(groups[annotation.AssetID], annotation)
	}

	books := make([]entities.Book, 0, len(groupOrder))
	for _, assetID := range groupOrder {
		book := entities.Book{
			BookRecord:  index[assetID],
			Annotations: groups[assetID],
		}
		for _, annotation := range book.Annotations {
			if t := annotation.ActivityTime(); t.After(book.LatestActivity) {
				book.LatestActivity = t
			}
		}
		books = append(books, book)
	}

	return books
}
