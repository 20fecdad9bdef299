package applebooks

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/noteharvester/noteharvester/internal/entities"
)

// Apple Books uses Core Data timestamps: seconds since 2001-01-01 00:00:00 UTC.
var coreDataEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

const selectBooksQuery = `
	SELECT
		ZASSETID as asset_id,
		ZTITLE as title,
		ZAUTHOR as author,
		ZPATH as path
	FROM ZBKLIBRARYASSET
`

// Soft-deleted rows and rows without selected text are filtered here, in the
// decode query: they are invalid at the storage level regardless of any join.
// ZPLLOCATIONRANGESTART keeps annotations in within-book reading order.
const selectAnnotationsQuery = `
	SELECT
		ZANNOTATIONASSETID as asset_id,
		ZANNOTATIONSELECTEDTEXT as selected_text,
		ZANNOTATIONNOTE as note,
		ZFUTUREPROOFING5 as chapter,
		ZANNOTATIONSTYLE as color_code,
		ZANNOTATIONCREATIONDATE as created_at,
		ZANNOTATIONMODIFICATIONDATE as modified_at
	FROM ZAEANNOTATION
	WHERE ZANNOTATIONDELETED = 0
		AND ZANNOTATIONSELECTEDTEXT IS NOT NULL
		AND ZANNOTATIONSELECTEDTEXT <> ''
	ORDER BY ZANNOTATIONASSETID, ZPLLOCATIONRANGESTART
`

// DecodeBooks reads all library rows from one shard. The shard handle is
// opened read-only and released before returning, on every path.
func DecodeBooks(shard string) ([]entities.BookRecord, error) {
	db, err := sql.Open("sqlite3", shard+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open book shard %s: %w", shard, err)
	}
	defer db.Close()

	rows, err := db.Query(selectBooksQuery)
	if err != nil {
		return nil, &SchemaMismatchError{Store: StoreBooks, Shard: shard, Err: err}
	}
	defer rows.Close()

	var records []entities.BookRecord
	for rows.Next() {
		var assetID, title, author, path sql.NullString

		if err := rows.Scan(&assetID, &title, &author, &path); err != nil {
			return nil, fmt.Errorf("failed to scan book row in %s: %w", shard, err)
		}
		if !assetID.Valid || assetID.String == "" {
			// Without an asset id the row can never be joined.
			continue
		}

		records = append(records, entities.BookRecord{
			AssetID:   assetID.String,
			Title:     nullableString(title),
			Author:    nullableString(author),
			CoverPath: nullableString(path),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows in %s: %w", shard, err)
	}

	return records, nil
}

// DecodeAnnotations reads all retained annotation rows from one shard.
// Each record gets a synthetic id; storage has no per-row id usable for
// selection.
func DecodeAnnotations(shard string) ([]entities.AnnotationRecord, error) {
	db, err := sql.Open("sqlite3", shard+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation shard %s: %w", shard, err)
	}
	defer db.Close()

	rows, err := db.Query(selectAnnotationsQuery)
	if err != nil {
		return nil, &SchemaMismatchError{Store: StoreAnnotations, Shard: shard, Err: err}
	}
	defer rows.Close()

	var records []entities.AnnotationRecord
	for rows.Next() {
		var assetID, selectedText, note, chapter sql.NullString
		var colorCode sql.NullInt64
		var createdAt, modifiedAt sql.NullFloat64

		err := rows.Scan(&assetID, &selectedText, &note, &chapter, &colorCode, &createdAt, &modifiedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation row in %s: %w", shard, err)
		}
		if !assetID.Valid || assetID.String == "" {
			continue
		}

		record := entities.AnnotationRecord{
			ID:           uuid.NewString(),
			AssetID:      assetID.String,
			SelectedText: selectedText.String,
			Note:         nullableString(note),
			Chapter:      nullableString(chapter),
			CreatedAt:    nullableTime(createdAt),
			ModifiedAt:   nullableTime(modifiedAt),
		}
		if colorCode.Valid {
			code := colorCode.Int64
			record.ColorCode = &code
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating annotation rows in %s: %w", shard, err)
	}

	return records, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// nullableTime converts a Core Data timestamp to an instant. A null stored
// value yields nil, not the epoch and not "now".
func nullableTime(v sql.NullFloat64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := coreDataEpoch.Add(time.Duration(v.Float64 * float64(time.Second)))
	return &t
}
