package service

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/testutil"
)

type bookSeeder struct {
	t  *testing.T
	db *gorm.DB
}

func (d *bookSeeder) seed(title, author string, opts ...testutil.BookOpt) model.Book {
	d.t.Helper()
	return testutil.SeedBook(d.t, d.db, title, author, opts...)
}

type fakeRepo struct {
	repository.BookRepository

	CreateFn     func(ctx context.Context, b *model.Book) error
	ISBNExistsFn func(ctx context.Context, isbn string, excludeIDs ...uint) (bool, error)
	BulkUpdateFn func(ctx context.Context, f repository.BookFilter, c repository.BookChanges, check repository.BulkCheck) ([]model.Book, error)
}

func (f *fakeRepo) Create(ctx context.Context, b *model.Book) error {
	return f.CreateFn(ctx, b)
}

func (f *fakeRepo) ISBNExists(ctx context.Context, isbn string, excludeIDs ...uint) (bool, error) {
	return f.ISBNExistsFn(ctx, isbn, excludeIDs...)
}

func (f *fakeRepo) BulkUpdate(ctx context.Context, filter repository.BookFilter, changes repository.BookChanges, check repository.BulkCheck) ([]model.Book, error) {
	return f.BulkUpdateFn(ctx, filter, changes, check)
}
