package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare-catalog/internal/metrics"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
)

type fakeBookService struct {
	CreateFn   func(ctx context.Context, in service.CreateBookInput) (*model.Book, error)
	GetFn      func(ctx context.Context, id uint) (*model.Book, error)
	ListFn     func(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error)
	UpdateFn   func(ctx context.Context, id uint, patch service.BookPatch) (*model.Book, error)
	DeleteFn   func(ctx context.Context, id uint) error
	ByAuthorFn func(ctx context.Context, author string, ordering repository.Ordering) ([]model.Book, error)
	BulkFn     func(ctx context.Context, author string, data map[string]any) (service.BulkUpdateResult, error)
	AuthorsFn  func(ctx context.Context) ([]string, error)
	GenresFn   func(ctx context.Context) ([]string, error)
}

func (f *fakeBookService) Create(ctx context.Context, in service.CreateBookInput) (*model.Book, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, in)
	}
	return &model.Book{ID: 1, Title: in.Title, Author: in.Author}, nil
}

func (f *fakeBookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return nil, service.ErrBookNotFound
}

func (f *fakeBookService) List(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return repository.BookListResult{}, nil
}

func (f *fakeBookService) Update(ctx context.Context, id uint, patch service.BookPatch) (*model.Book, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, patch)
	}
	return nil, service.ErrBookNotFound
}

func (f *fakeBookService) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookService) ByAuthor(ctx context.Context, author string, ordering repository.Ordering) ([]model.Book, error) {
	if f.ByAuthorFn != nil {
		return f.ByAuthorFn(ctx, author, ordering)
	}
	return nil, nil
}

func (f *fakeBookService) BulkUpdateByAuthor(ctx context.Context, author string, data map[string]any) (service.BulkUpdateResult, error) {
	if f.BulkFn != nil {
		return f.BulkFn(ctx, author, data)
	}
	return service.BulkUpdateResult{}, nil
}

func (f *fakeBookService) Authors(ctx context.Context) ([]string, error) {
	if f.AuthorsFn != nil {
		return f.AuthorsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookService) Genres(ctx context.Context) ([]string, error) {
	if f.GenresFn != nil {
		return f.GenresFn(ctx)
	}
	return nil, nil
}

func setupBookRouterWithService(svc BookService, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(svc, opts...)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB, opts ...Option) *gin.Engine {
	svc := service.NewBookService(repository.NewGormBookRepository(db), service.DefaultBulkFields())
	return setupBookRouterWithService(svc, opts...)
}

func setupTestRouterWithMetrics(db *gorm.DB) (*gin.Engine, *metrics.Metrics) {
	m := metrics.New()
	return setupTestRouter(db, WithMetrics(m)), m
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req, _ := http.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}
