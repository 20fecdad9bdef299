package applebooks

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// createStores creates empty book and annotation store directories mimicking
// the BKLibrary/AEAnnotation layout.
func createStores(t *testing.T) (bookStore, annotationStore string) {
	t.Helper()

	tempDir := t.TempDir()
	bookStore = filepath.Join(tempDir, "BKLibrary")
	annotationStore = filepath.Join(tempDir, "AEAnnotation")
	require.NoError(t, os.Mkdir(bookStore, 0755))
	require.NoError(t, os.Mkdir(annotationStore, 0755))

	return bookStore, annotationStore
}

// createBookShard creates one library shard file with the ZBKLIBRARYASSET
// schema and returns its path.
func createBookShard(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE ZBKLIBRARYASSET (
			Z_PK INTEGER PRIMARY KEY,
			ZASSETID TEXT,
			ZTITLE TEXT,
			ZAUTHOR TEXT,
			ZPATH TEXT
		)
	`)
	require.NoError(t, err)

	return path
}

// createAnnotationShard creates one annotation shard file with the
// ZAEANNOTATION schema and returns its path.
func createAnnotationShard(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE ZAEANNOTATION (
			Z_PK INTEGER PRIMARY KEY,
			ZANNOTATIONASSETID TEXT,
			ZANNOTATIONSELECTEDTEXT TEXT,
			ZANNOTATIONNOTE TEXT,
			ZFUTUREPROOFING5 TEXT,
			ZANNOTATIONSTYLE INTEGER,
			ZANNOTATIONCREATIONDATE REAL,
			ZANNOTATIONMODIFICATIONDATE REAL,
			ZPLLOCATIONRANGESTART INTEGER,
			ZANNOTATIONDELETED INTEGER DEFAULT 0
		)
	`)
	require.NoError(t, err)

	return path
}

// insertBook inserts one library row. Nullable columns take nil.
func insertBook(t *testing.T, shard string, assetID string, title, author, coverPath any) {
	t.Helper()

	db, err := sql.Open("sqlite3", shard)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO ZBKLIBRARYASSET (ZASSETID, ZTITLE, ZAUTHOR, ZPATH)
		VALUES (?, ?, ?, ?)
	`, assetID, title, author, coverPath)
	require.NoError(t, err)
}

// annotationRow mirrors one ZAEANNOTATION insert. Nullable columns take nil.
type annotationRow struct {
	assetID       string
	text          any
	note          any
	chapter       any
	style         any
	createdAt     any
	modifiedAt    any
	locationStart int64
	deleted       int
}

func insertAnnotation(t *testing.T, shard string, row annotationRow) {
	t.Helper()

	db, err := sql.Open("sqlite3", shard)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO ZAEANNOTATION (
			ZANNOTATIONASSETID, ZANNOTATIONSELECTEDTEXT, ZANNOTATIONNOTE,
			ZFUTUREPROOFING5, ZANNOTATIONSTYLE, ZANNOTATIONCREATIONDATE,
			ZANNOTATIONMODIFICATIONDATE, ZPLLOCATIONRANGESTART, ZANNOTATIONDELETED
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.assetID, row.text, row.note, row.chapter, row.style,
		row.createdAt, row.modifiedAt, row.locationStart, row.deleted)
	require.NoError(t, err)
}
