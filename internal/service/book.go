package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

type CreateBookInput struct {
	Title           string
	Author          string
	ISBN            string
	PublicationDate *time.Time
	Description     string
	Genre           string
}

// BookPatch holds the fields to change. A nil field is left as is; a
// PublicationDate holding the zero date clears the column.
type BookPatch struct {
	Title           *string
	Author          *string
	ISBN            *string
	PublicationDate *model.Date
	Description     *string
	Genre           *string
}

type BulkUpdateResult struct {
	Author string
	Count  int
	Books  []model.Book
}

type BookService struct {
	repo       repository.BookRepository
	bulkFields BulkFields
}

func NewBookService(repo repository.BookRepository, bulkFields BulkFields) *BookService {
	return &BookService{
		repo:       repo,
		bulkFields: bulkFields,
	}
}

func (s *BookService) BulkFields() BulkFields {
	return s.bulkFields
}

func (s *BookService) Create(ctx context.Context, in CreateBookInput) (*model.Book, error) {
	book := model.Book{
		Title:           strings.TrimSpace(in.Title),
		Author:          strings.TrimSpace(in.Author),
		ISBN:            strings.TrimSpace(in.ISBN),
		PublicationDate: dateOnly(in.PublicationDate),
		Description:     in.Description,
		Genre:           strings.TrimSpace(in.Genre),
	}

	if err := checkBook(&book); err != nil {
		return nil, err
	}
	if err := checkISBNAvailable(ctx, s.repo, book.ISBN); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &book); err != nil {
		if errors.Is(err, repository.ErrDuplicateISBN) {
			return nil, isbnTaken()
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &book, nil
}

func (s *BookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("fetch book %d: %w", id, err)
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
	result, err := s.repo.List(ctx, params)
	if err != nil {
		return repository.BookListResult{}, fmt.Errorf("list books: %w", err)
	}
	return result, nil
}

// Update applies patch to the book with the given id and persists it.
func (s *BookService) Update(ctx context.Context, id uint, patch BookPatch) (*model.Book, error) {
	book, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		book.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Author != nil {
		book.Author = strings.TrimSpace(*patch.Author)
	}
	if patch.ISBN != nil {
		book.ISBN = strings.TrimSpace(*patch.ISBN)
	}
	if patch.PublicationDate != nil {
		book.PublicationDate = patch.PublicationDate.Ptr()
	}
	if patch.Description != nil {
		book.Description = *patch.Description
	}
	if patch.Genre != nil {
		book.Genre = strings.TrimSpace(*patch.Genre)
	}

	if err := checkBook(book); err != nil {
		return nil, err
	}
	if patch.ISBN != nil {
		if err := checkISBNAvailable(ctx, s.repo, book.ISBN, book.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, book); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrBookNotFound
		case errors.Is(err, repository.ErrDuplicateISBN):
			return nil, isbnTaken()
		}
		return nil, fmt.Errorf("update book %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// ByAuthor returns every book whose author contains author, ignoring case.
// No match is not an error.
func (s *BookService) ByAuthor(ctx context.Context, author string, ordering repository.Ordering) ([]model.Book, error) {
	books, err := s.repo.Find(ctx, repository.BookFilter{
		Author:   author,
		Ordering: ordering,
	})
	if err != nil {
		return nil, fmt.Errorf("find books by author: %w", err)
	}
	return books, nil
}

// BulkUpdateByAuthor writes the allowed fields of updateData to every book
// whose author contains author, in one transaction.
func (s *BookService) BulkUpdateByAuthor(ctx context.Context, author string, updateData map[string]any) (BulkUpdateResult, error) {
	author = strings.TrimSpace(author)
	if author == "" || len(updateData) == 0 {
		return BulkUpdateResult{}, ErrMissingParams
	}

	allowed := s.bulkFields.restrict(updateData)
	if len(allowed) == 0 {
		return BulkUpdateResult{}, ErrNoValidFields
	}

	changes := make(repository.BookChanges, len(allowed))
	for field, raw := range allowed {
		v, verr := bulkCoercers[field](field, raw)
		if verr != nil {
			return BulkUpdateResult{}, verr
		}
		changes[field] = v
	}

	var check repository.BulkCheck
	if isbn, ok := changes["isbn"].(string); ok {
		isbn = strings.TrimSpace(isbn)
		changes["isbn"] = isbn
		if err := validation.CheckISBN(isbn); err != nil {
			return BulkUpdateResult{}, isbnFormatError(err)
		}
		if isbn != "" {
			check = bulkISBNCheck(isbn)
		}
	}

	books, err := s.repo.BulkUpdate(ctx, repository.BookFilter{Author: author}, changes, check)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return BulkUpdateResult{}, verr
		case errors.Is(err, repository.ErrNotFound):
			return BulkUpdateResult{}, ErrNoBooksFound
		case errors.Is(err, repository.ErrDuplicateISBN):
			return BulkUpdateResult{}, isbnTaken()
		}
		return BulkUpdateResult{}, fmt.Errorf("bulk update books by %q: %w", author, err)
	}

	return BulkUpdateResult{
		Author: author,
		Count:  len(books),
		Books:  books,
	}, nil
}

func (s *BookService) Authors(ctx context.Context) ([]string, error) {
	authors, err := s.repo.DistinctAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (s *BookService) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repo.DistinctGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// Reset removes every book and reports how many were deleted.
func (s *BookService) Reset(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all books: %w", err)
	}
	return n, nil
}

// bulkISBNCheck rejects assigning a non-empty isbn to more than one book or
// to a selection when a book outside it already holds the value.
func bulkISBNCheck(isbn string) repository.BulkCheck {
	return func(ctx context.Context, tx repository.BookRepository, selected []model.Book) error {
		if len(selected) > 1 {
			return fieldError("isbn", "isbn_unique",
				"ISBN can only be assigned to a single book.")
		}

		ids := make([]uint, 0, len(selected))
		for _, b := range selected {
			ids = append(ids, b.ID)
		}
		return checkISBNAvailable(ctx, tx, isbn, ids...)
	}
}

func checkBook(b *model.Book) error {
	switch {
	case b.Title == "":
		return fieldError("title", "required", "title is required")
	case b.Author == "":
		return fieldError("author", "required", "author is required")
	}

	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"title", b.Title, maxTitleLen},
		{"author", b.Author, maxAuthorLen},
		{"isbn", b.ISBN, maxISBNLen},
		{"genre", b.Genre, maxGenreLen},
		{"description", b.Description, maxDescriptionLen},
	} {
		if err := checkLen(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := validation.CheckISBN(b.ISBN); err != nil {
		return isbnFormatError(err)
	}
	return nil
}

func checkISBNAvailable(ctx context.Context, repo repository.BookRepository, isbn string, excludeIDs ...uint) error {
	if strings.TrimSpace(isbn) == "" {
		return nil
	}

	taken, err := repo.ISBNExists(ctx, isbn, excludeIDs...)
	if err != nil {
		return fmt.Errorf("check isbn: %w", err)
	}
	if taken {
		return isbnTaken()
	}
	return nil
}

func isbnFormatError(err error) *ValidationError {
	return fieldError("isbn", validation.ISBNRule(err), err.Error())
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := model.DateOnly(*t)
	return &d
}
