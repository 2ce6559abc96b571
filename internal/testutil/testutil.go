package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewErrorDB returns a database without the books table, so every query fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

type BookOpt func(*model.Book)

func WithISBN(isbn string) BookOpt {
	return func(b *model.Book) { b.ISBN = isbn }
}

func WithGenre(genre string) BookOpt {
	return func(b *model.Book) { b.Genre = genre }
}

func WithDescription(desc string) BookOpt {
	return func(b *model.Book) { b.Description = desc }
}

func WithPublicationDate(date string) BookOpt {
	return func(b *model.Book) {
		t, err := time.Parse(model.DateLayout, date)
		if err != nil {
			panic(err)
		}
		b.PublicationDate = &t
	}
}

func WithCreatedAt(t time.Time) BookOpt {
	return func(b *model.Book) {
		b.CreatedAt = t
		b.UpdatedAt = t
	}
}

func SeedBook(t *testing.T, db *gorm.DB, title, author string, opts ...BookOpt) model.Book {
	t.Helper()

	book := model.Book{
		Title:  title,
		Author: author,
	}
	for _, opt := range opts {
		opt(&book)
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}
