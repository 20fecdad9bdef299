package entities

import "time"

// BookRecord is one row from the Apple Books library store (ZBKLIBRARYASSET).
// Title, author and the container path are nullable in storage; absent values
// stay nil and are rendered with explicit placeholders downstream.
type BookRecord struct {
	AssetID   string  `json:"asset_id"`
	Title     *string `json:"title,omitempty"`
	Author    *string `json:"author,omitempty"`
	CoverPath *string `json:"cover_path,omitempty"`
}

// AnnotationRecord is one row from the annotation store (ZAEANNOTATION).
// Storage has no per-row id usable for selection, so ID is synthesized at
// decode time. Soft-deleted rows and rows without selected text never make it
// into an AnnotationRecord.
type AnnotationRecord struct {
	ID           string     `json:"id"`
	AssetID      string     `json:"asset_id"`
	SelectedText string     `json:"selected_text"`
	Note         *string    `json:"note,omitempty"`
	Chapter      *string    `json:"chapter,omitempty"`
	ColorCode    *int64     `json:"color_code,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	ModifiedAt   *time.Time `json:"modified_at,omitempty"`
}

// Book is a library record with its correlated annotations attached. Every
// Book holds at least one annotation; books without qualifying highlights are
// dropped during correlation.
type Book struct {
	BookRecord
	Annotations []AnnotationRecord `json:"annotations"`

	// LatestActivity is the max of ModifiedAt (falling back to CreatedAt)
	// across all annotations, zero when no annotation carries a timestamp.
	// Used for display ordering only.
	LatestActivity time.Time `json:"latest_activity"`
}

// DisplayTitle returns the title or the placeholder used across exports.
func (b *Book) DisplayTitle() string {
	if b.Title == nil {
		return "Unknown Title"
	}
	return *b.Title
}

// DisplayAuthor returns the author or the placeholder used across exports.
func (b *Book) DisplayAuthor() string {
	if b.Author == nil {
		return "Unknown Author"
	}
	return *b.Author
}

// ActivityTime returns the annotation's modification time, falling back to
// its creation time, zero when neither is present.
func (a *AnnotationRecord) ActivityTime() time.Time {
	if a.ModifiedAt != nil {
		return *a.ModifiedAt
	}
	if a.CreatedAt != nil {
		return *a.CreatedAt
	}
	return time.Time{}
}

// Warning describes a shard or store that could not contribute to an
// extraction pass. Warnings accompany partial results; they are not errors.
type Warning struct {
	Store string `json:"store"`
	Shard string `json:"shard,omitempty"`
	Err   error  `json:"-"`
}

func (w Warning) Message() string {
	if w.Err == nil {
		return ""
	}
	return w.Err.Error()
}

// SelectedAnnotation is an annotation still reachable to its owning book;
// exporters need the book for author and title lookup.
type SelectedAnnotation struct {
	Book       *Book
	Annotation AnnotationRecord
}

// Library is the immutable result of one extraction pass.
type Library struct {
	Books    []Book    `json:"books"`
	Warnings []Warning `json:"warnings,omitempty"`
}
