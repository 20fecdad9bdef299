package applebooks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// Extractor runs one synchronous extraction pass over the two Apple Books
// stores. It holds only the store root paths; every pass opens and closes its
// own shard handles, so re-running extraction is idempotent and safe.
type Extractor struct {
	bookStorePath       string
	annotationStorePath string
}

// NewExtractor creates an extractor for the given store roots. Empty paths
// fall back to the default macOS Apple Books container locations.
func NewExtractor(bookStorePath, annotationStorePath string) (*Extractor, error) {
	var err error

	if bookStorePath == "" {
		bookStorePath, err = DefaultBookStorePath()
		if err != nil {
			return nil, fmt.Errorf("failed to find book store: %w", err)
		}
	}

	if annotationStorePath == "" {
		annotationStorePath, err = DefaultAnnotationStorePath()
		if err != nil {
			return nil, fmt.Errorf("failed to find annotation store: %w", err)
		}
	}

	return &Extractor{
		bookStorePath:       bookStorePath,
		annotationStorePath: annotationStorePath,
	}, nil
}

func (e *Extractor) BookStorePath() string {
	return e.bookStorePath
}

func (e *Extractor) AnnotationStorePath() string {
	return e.annotationStorePath
}

// Extract scans both stores, decodes every readable shard, correlates, and
// returns the immutable snapshot. Unreadable stores and malformed shards are
// reported as warnings alongside the (possibly partial) result; extraction
// itself never aborts. Correlation starts only after all shards of both
// stores have been decoded. Books are ordered by latest annotation activity,
// ascending, stable with respect to correlation order.
func (e *Extractor) Extract() *entities.Library {
	var warnings []entities.Warning

	bookRecords, bookWarnings := decodeStore(StoreBooks, e.bookStorePath, DecodeBooks)
	warnings = append(warnings, bookWarnings...)

	annotationRecords, annotationWarnings := decodeStore(StoreAnnotations, e.annotationStorePath, DecodeAnnotations)
	warnings = append(warnings, annotationWarnings...)

	books := Correlate(bookRecords, annotationRecords)

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].LatestActivity.Before(books[j].LatestActivity)
	})

	return &entities.Library{Books: books, Warnings: warnings}
}

// decodeStore collects the records of all readable shards of one store.
// A failed shard costs only its own contribution.
func decodeStore[T any](store, root string, decode func(string) ([]T, error)) ([]T, []entities.Warning) {
	shards, err := LocateShards(store, root)
	if err != nil {
		return nil, []entities.Warning{{Store: store, Err: err}}
	}

	var records []T
	var warnings []entities.Warning
	for _, shard := range shards {
		decoded, err := decode(shard)
		if err != nil {
			warnings = append(warnings, entities.Warning{
				Store: store,
				Shard: filepath.Base(shard),
				Err:   err,
			})
			continue
		}
		records = append(records, decoded...)
	}

	return records, warnings
}

// VerifyStore reports whether a store root exists and is a directory.
// Used by commands to fail early with a precise message.
func VerifyStore(store, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &StorageUnavailableError{Store: store, Path: root, Err: err}
	}
	if !info.IsDir() {
		return &StorageUnavailableError{Store: store, Path: root, Err: fmt.Errorf("not a directory")}
	}
	return nil
}
