package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/noteharvester/noteharvester/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Book{}, &Annotation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBook upserts a harvested book by asset id. Each extraction pass is a
// full snapshot, so existing annotations of the book are replaced rather
// than merged. The whole upsert runs in one transaction; a failure at any
// step leaves the previously stored annotations untouched.
func (d *Database) SaveBook(book *entities.Book) error {
	stored := Book{
		AssetID:        book.AssetID,
		Title:          book.DisplayTitle(),
		Author:         book.DisplayAuthor(),
		LatestActivity: book.LatestActivity,
	}
	if book.CoverPath != nil {
		stored.CoverPath = *book.CoverPath
	}

	return d.DB.Transaction(func(tx *gorm.DB) error {
		var existing Book
		err := tx.Where("asset_id = ?", book.AssetID).First(&existing).Error
		switch {
		case err == nil:
			stored.ID = existing.ID
			stored.CreatedAt = existing.CreatedAt
			if err := tx.Where("book_id = ?", existing.ID).Delete(&Annotation{}).Error; err != nil {
				return fmt.Errorf("failed to clear annotations for %s: %w", book.AssetID, err)
			}
			if err := tx.Save(&stored).Error; err != nil {
				return fmt.Errorf("failed to update book %s: %w", book.AssetID, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&stored).Error; err != nil {
				return fmt.Errorf("failed to create book %s: %w", book.AssetID, err)
			}
		default:
			return fmt.Errorf("failed to look up book %s: %w", book.AssetID, err)
		}

		for _, record := range book.Annotations {
			annotation := Annotation{
				BookID:       stored.ID,
				AssetID:      record.AssetID,
				SelectedText: record.SelectedText,
				ColorCode:    record.ColorCode,
			}
			if record.Note != nil {
				annotation.Note = *record.Note
			}
			if record.Chapter != nil {
				annotation.Chapter = *record.Chapter
			}
			if t := record.ActivityTime(); !t.IsZero() {
				annotation.HighlightedAt = &t
			}

			if err := tx.Create(&annotation).Error; err != nil {
				return fmt.Errorf("failed to save annotation for %s: %w", book.AssetID, err)
			}
		}

		return nil
	})
}

// GetAllBooks returns all stored books with their annotations, ordered by
// latest annotation activity.
func (d *Database) GetAllBooks() ([]Book, error) {
	var books []Book
	err := d.DB.Preload("Annotations").Order("latest_activity").Find(&books).Error
	return books, err
}

// GetBookByAssetID returns one stored book with its annotations.
func (d *Database) GetBookByAssetID(assetID string) (*Book, error) {
	var book Book
	err := d.DB.Preload("Annotations").Where("asset_id = ?", assetID).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}
