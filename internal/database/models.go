package database

import "time"

// Book is a harvested book persisted in the local database. Titles and
// authors are stored with their display placeholders already applied, since
// the local database exists for browsing past harvests, not as a second copy
// of the Apple Books store.
type Book struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AssetID        string    `gorm:"uniqueIndex;size:256" json:"asset_id"`
	Title          string    `gorm:"index;size:512" json:"title"`
	Author         string    `gorm:"index;size:256" json:"author"`
	CoverPath      string    `gorm:"size:1024" json:"cover_path,omitempty"`
	LatestActivity time.Time `json:"latest_activity"`

	Annotations []Annotation `gorm:"foreignKey:BookID" json:"annotations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Annotation is one harvested highlight belonging to a stored Book.
type Annotation struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	BookID        uint       `gorm:"index" json:"book_id"`
	AssetID       string     `gorm:"index;size:256" json:"asset_id"`
	SelectedText  string     `gorm:"type:text" json:"selected_text"`
	Note          string     `gorm:"type:text" json:"note,omitempty"`
	Chapter       string     `gorm:"size:256" json:"chapter,omitempty"`
	ColorCode     *int64     `json:"color_code,omitempty"`
	HighlightedAt *time.Time `json:"highlighted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (Annotation) TableName() string {
	return "annotations"
}
