package applebooks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBooks(t *testing.T) {
	t.Run("maps nullable columns to nil, not defaults", func(t *testing.T) {
		bookStore, _ := createStores(t)
		shard := createBookShard(t, bookStore, "BKLibrary-1.sqlite")
		insertBook(t, shard, "asset-1", "Moby-Dick", "Herman Melville", "/books/moby.epub")
		insertBook(t, shard, "asset-2", nil, nil, nil)

		records, err := DecodeBooks(shard)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "asset-1", records[0].AssetID)
		require.NotNil(t, records[0].Title)
		assert.Equal(t, "Moby-Dick", *records[0].Title)
		require.NotNil(t, records[0].Author)
		assert.Equal(t, "Herman Melville", *records[0].Author)
		require.NotNil(t, records[0].CoverPath)
		assert.Equal(t, "/books/moby.epub", *records[0].CoverPath)

		assert.Nil(t, records[1].Title)
		assert.Nil(t, records[1].Author)
		assert.Nil(t, records[1].CoverPath)
	})

	t.Run("skips rows without asset id", func(t *testing.T) {
		bookStore, _ := createStores(t)
		shard := createBookShard(t, bookStore, "BKLibrary-1.sqlite")
		insertBook(t, shard, "", "Untitled", nil, nil)
		insertBook(t, shard, "asset-1", "Kept", nil, nil)

		records, err := DecodeBooks(shard)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "asset-1", records[0].AssetID)
	})

	t.Run("wrong schema fails with schema mismatch", func(t *testing.T) {
		bookStore, annotationStore := createStores(t)
		// An annotation shard has no ZBKLIBRARYASSET table.
		shard := createAnnotationShard(t, annotationStore, "wrong.sqlite")
		_ = bookStore

		_, err := DecodeBooks(shard)

		var mismatch *SchemaMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, StoreBooks, mismatch.Store)
		assert.Equal(t, shard, mismatch.Shard)
	})
}

func TestDecodeAnnotations(t *testing.T) {
	t.Run("converts the reference epoch exactly", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "zero", createdAt: 0.0, locationStart: 1})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "one", createdAt: 1.0, locationStart: 2})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "none", locationStart: 3})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 3)

		require.NotNil(t, records[0].CreatedAt)
		assert.Equal(t, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), records[0].CreatedAt.UTC())

		require.NotNil(t, records[1].CreatedAt)
		assert.Equal(t, time.Date(2001, 1, 1, 0, 0, 1, 0, time.UTC), records[1].CreatedAt.UTC())

		assert.Nil(t, records[2].CreatedAt)
		assert.Nil(t, records[2].ModifiedAt)
	})

	t.Run("filters soft-deleted rows", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "deleted one", note: "still has a note", deleted: 1, locationStart: 1})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "kept", locationStart: 2})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "kept", records[0].SelectedText)
	})

	t.Run("filters rows without selected text", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "", note: "note only", locationStart: 1})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: nil, locationStart: 2})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "kept", locationStart: 3})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "kept", records[0].SelectedText)
	})

	t.Run("maps nullable metadata to nil, never zero", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "bare", locationStart: 1})
		insertAnnotation(t, shard, annotationRow{
			assetID: "a", text: "full", note: "my note", chapter: "Chapter 3",
			style: int64(4), createdAt: 100.0, modifiedAt: 200.0, locationStart: 2,
		})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 2)

		bare := records[0]
		assert.Nil(t, bare.Note)
		assert.Nil(t, bare.Chapter)
		assert.Nil(t, bare.ColorCode)

		full := records[1]
		require.NotNil(t, full.Note)
		assert.Equal(t, "my note", *full.Note)
		require.NotNil(t, full.Chapter)
		assert.Equal(t, "Chapter 3", *full.Chapter)
		require.NotNil(t, full.ColorCode)
		assert.Equal(t, int64(4), *full.ColorCode)
		require.NotNil(t, full.ModifiedAt)
		assert.Equal(t, time.Date(2001, 1, 1, 0, 3, 20, 0, time.UTC), full.ModifiedAt.UTC())
	})

	t.Run("orders by asset id then location", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "b", text: "b-200", locationStart: 200})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "a-100", locationStart: 100})
		insertAnnotation(t, shard, annotationRow{assetID: "b", text: "b-50", locationStart: 50})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "a-100", records[0].SelectedText)
		assert.Equal(t, "b-50", records[1].SelectedText)
		assert.Equal(t, "b-200", records[2].SelectedText)
	})

	t.Run("assigns unique synthetic ids", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := createAnnotationShard(t, annotationStore, "AEAnnotation-1.sqlite")
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "first", locationStart: 1})
		insertAnnotation(t, shard, annotationRow{assetID: "a", text: "second", locationStart: 2})

		records, err := DecodeAnnotations(shard)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.NotEmpty(t, records[0].ID)
		assert.NotEmpty(t, records[1].ID)
		assert.NotEqual(t, records[0].ID, records[1].ID)
	})

	t.Run("garbage shard fails with schema mismatch", func(t *testing.T) {
		_, annotationStore := createStores(t)
		shard := filepath.Join(annotationStore, "garbage.sqlite")
		require.NoError(t, os.WriteFile(shard, []byte("this is not a sqlite database"), 0644))

		_, err := DecodeAnnotations(shard)

		var mismatch *SchemaMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, StoreAnnotations, mismatch.Store)
	})
}
