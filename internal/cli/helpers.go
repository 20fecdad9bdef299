package cli

import (
	"fmt"
	"os"

	"github.com/noteharvester/noteharvester/internal/applebooks"
	"github.com/noteharvester/noteharvester/internal/entities"
	"github.com/noteharvester/noteharvester/internal/queryview"
)

// extractLibrary runs one extraction pass against the given store roots,
// falling back to the default macOS locations for empty paths.
func extractLibrary(bookStorePath, annotationStorePath string) (*entities.Library, error) {
	extractor, err := applebooks.NewExtractor(bookStorePath, annotationStorePath)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(), nil
}

// buildView extracts the library, applies the filters and selects every book
// that survives the book filter, so annotation projections are ready to use.
func buildView(bookStorePath, annotationStorePath, bookFilter, annotationFilter string) (*queryview.View, *entities.Library, error) {
	library, err := extractLibrary(bookStorePath, annotationStorePath)
	if err != nil {
		return nil, nil, err
	}

	view := queryview.NewView(library)
	view.SetBookFilter(bookFilter)
	view.SetAnnotationFilter(annotationFilter)

	books := view.Books()
	assetIDs := make([]string, 0, len(books))
	for _, book := range books {
		assetIDs = append(assetIDs, book.AssetID)
	}
	view.SelectBooks(assetIDs)

	return view, library, nil
}

// selectAllAnnotations marks every annotation visible through the view's
// current filters as selected.
func selectAllAnnotations(view *queryview.View) {
	annotations := view.Annotations()
	ids := make([]string, 0, len(annotations))
	for _, annotation := range annotations {
		ids = append(ids, annotation.ID)
	}
	view.SelectAnnotations(ids)
}

func printWarnings(warnings []entities.Warning) {
	for _, warning := range warnings {
		if warning.Shard != "" {
			fmt.Fprintf(os.Stderr, "⚠️  Skipped %s shard %s: %s\n", warning.Store, warning.Shard, warning.Message())
		} else {
			fmt.Fprintf(os.Stderr, "⚠️  Skipped %s store: %s\n", warning.Store, warning.Message())
		}
	}
}
