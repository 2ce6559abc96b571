package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateISBN = errors.New("duplicate isbn")
)

type BookListParams struct {
	Page     int
	PageSize int
	Filter   BookFilter
}

type BookListResult struct {
	Books []model.Book
	Total int64
}

// BookChanges is the set of columns written by a bulk update, keyed by column name.
type BookChanges map[string]any

// BulkCheck runs inside the bulk update transaction against the selected
// rows. Returning an error aborts the update.
type BulkCheck func(ctx context.Context, tx BookRepository, selected []model.Book) error

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params BookListParams) (BookListResult, error)
	Find(ctx context.Context, filter BookFilter) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uint) error
	ISBNExists(ctx context.Context, isbn string, excludeIDs ...uint) (bool, error)
	BulkUpdate(ctx context.Context, filter BookFilter, changes BookChanges, check BulkCheck) ([]model.Book, error)
	DistinctAuthors(ctx context.Context) ([]string, error)
	DistinctGenres(ctx context.Context) ([]string, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return translate(r.db.WithContext(ctx).Create(book).Error)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) (BookListResult, error) {
	var result BookListResult

	base := r.db.WithContext(ctx).Model(&model.Book{})

	if err := applyBookPredicates(base.Session(&gorm.Session{}), params.Filter).
		Count(&result.Total).Error; err != nil {

		return BookListResult{}, err
	}

	q := applyBookFilter(base.Session(&gorm.Session{}), params.Filter)
	if params.PageSize > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * params.PageSize).Limit(params.PageSize)
	}

	if err := q.Find(&result.Books).Error; err != nil {
		return BookListResult{}, err
	}

	return result, nil
}

func (r *GormBookRepository) Find(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := applyBookFilter(r.db.WithContext(ctx), filter).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	result := r.db.WithContext(ctx).
		Model(book).
		Select("title", "author", "isbn", "publication_date", "description", "genre", "updated_at").
		Updates(book)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ISBNExists reports whether another record stores exactly isbn.
func (r *GormBookRepository) ISBNExists(ctx context.Context, isbn string, excludeIDs ...uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{}).Where("isbn = ?", isbn)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// BulkUpdate applies changes to every record matching filter in a single
// transaction and returns the updated records. Nothing is written when no
// record matches.
func (r *GormBookRepository) BulkUpdate(ctx context.Context, filter BookFilter, changes BookChanges, check BulkCheck) ([]model.Book, error) {
	var updated []model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &GormBookRepository{db: tx}

		selected, err := txRepo.Find(ctx, filter)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return ErrNotFound
		}

		if check != nil {
			if err := check(ctx, txRepo, selected); err != nil {
				return err
			}
		}

		values := make(map[string]any, len(changes)+1)
		for k, v := range changes {
			values[k] = v
		}
		values["updated_at"] = tx.NowFunc()

		for _, b := range selected {
			result := tx.Model(&model.Book{}).Where("id = ?", b.ID).Updates(values)
			if result.Error != nil {
				return translate(result.Error)
			}
			if result.RowsAffected != 1 {
				return ErrNotFound
			}
		}

		ids := make([]uint, 0, len(selected))
		for _, b := range selected {
			ids = append(ids, b.ID)
		}

		return applyBookFilter(tx.Where("id IN ?", ids), BookFilter{Ordering: filter.Ordering}).
			Find(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *GormBookRepository) DistinctAuthors(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "author")
}

func (r *GormBookRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "genre")
}

func (r *GormBookRepository) distinct(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where(column+" <> ''").
		Distinct(column).
		Pluck(column, &values).Error; err != nil {

		return nil, err
	}

	sort.SliceStable(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values, nil
}

func (r *GormBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Book{})
	return result.RowsAffected, result.Error
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicateKey(err) {
		return ErrDuplicateISBN
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
