//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare-catalog/internal/config"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/handler"
	"github.com/snnyvrz/shelfshare-catalog/internal/logger"
	"github.com/snnyvrz/shelfshare-catalog/internal/metrics"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/server"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

var (
	testDB     *gorm.DB
	testRouter *gin.Engine
)

func TestMain(m *testing.M) {
	cfg := &config.Config{
		DBDriver:     config.DriverPostgres,
		DBHost:       os.Getenv("POSTGRES_HOST"),
		DBPort:       os.Getenv("POSTGRES_PORT"),
		DBUser:       os.Getenv("POSTGRES_USER"),
		DBPass:       os.Getenv("POSTGRES_PASSWORD"),
		DBName:       os.Getenv("POSTGRES_DB"),
		DBSSLMode:    "disable",
		TZ:           "UTC",
		DBAttempts:   5,
		DBRetryDelay: time.Second,
	}

	database, err := db.ConnectWithRetry(cfg, logger.Nop())
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	testDB = database

	if err := db.Migrate(context.Background(), database, "up"); err != nil {
		panic("failed to migrate: " + err.Error())
	}

	sqlDB, err := database.DB()
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)
	validation.RegisterValidators()

	testRouter = server.NewRouter(server.Deps{
		Books:     service.NewBookService(repository.NewGormBookRepository(database), service.DefaultBulkFields()),
		DB:        sqlDB,
		Metrics:   metrics.New(),
		Log:       logger.Nop(),
		StartTime: time.Now(),
		Version:   "integration",
	})

	os.Exit(m.Run())
}

func resetDB(t *testing.T) {
	t.Helper()

	if err := testDB.Exec("TRUNCATE TABLE books RESTART IDENTITY").Error; err != nil {
		t.Fatalf("failed to reset db: %v", err)
	}
}

func do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func createBook(t *testing.T, body map[string]any) handler.CreatedBook {
	t.Helper()

	w := do(t, http.MethodPost, "/api/books", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}

	var resp handler.CreateBookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	return resp.Data
}

func TestIntegration_CreateAndOrdering(t *testing.T) {
	resetDB(t)

	createBook(t, map[string]any{"title": "Zed", "author": "Smith", "isbn": ""})
	createBook(t, map[string]any{"title": "Abe", "author": "Jones", "isbn": ""})
	createBook(t, map[string]any{"title": "banana", "author": "Lee", "isbn": ""})

	w := do(t, http.MethodGet, "/api/books?ordering=title", nil)
	var resp handler.ListBooksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	want := []string{"Abe", "banana", "Zed"}
	if len(resp.Data) != len(want) {
		t.Fatalf("expected %d books, got %d", len(want), len(resp.Data))
	}
	for i, b := range resp.Data {
		if b.Title != want[i] {
			t.Fatalf("expected %v, got position %d = %q", want, i, b.Title)
		}
	}
}

func TestIntegration_PartialUniqueISBNIndex(t *testing.T) {
	resetDB(t)

	createBook(t, map[string]any{"title": "A", "author": "X"})
	createBook(t, map[string]any{"title": "B", "author": "Y"})
	createBook(t, map[string]any{"title": "C", "author": "Z", "isbn": "978-0451524935"})

	repo := repository.NewGormBookRepository(testDB)
	err := repo.Create(context.Background(), &model.Book{Title: "D", Author: "W", ISBN: "978-0451524935"})
	if !errors.Is(err, repository.ErrDuplicateISBN) {
		t.Fatalf("expected ErrDuplicateISBN from the unique index, got %v", err)
	}

	w := do(t, http.MethodPost, "/api/books", map[string]any{"title": "E", "author": "V", "isbn": "978-0451524935"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var verr validation.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &verr)
	if len(verr.Errors) != 1 || verr.Errors[0].Rule != "isbn_unique" {
		t.Fatalf("unexpected errors: %+v", verr.Errors)
	}
}

func TestIntegration_BulkUpdateAndAuthors(t *testing.T) {
	resetDB(t)

	createBook(t, map[string]any{"title": "1984", "author": "George Orwell", "genre": "Dystopian"})
	createBook(t, map[string]any{"title": "Animal Farm", "author": "George Orwell", "genre": "Satire"})
	createBook(t, map[string]any{"title": "Emma", "author": "Jane Austen", "genre": "Romance"})

	w := do(t, http.MethodPatch, "/api/books/update-by-author", map[string]any{
		"author":      "orwell",
		"update_data": map[string]any{"genre": "Classics", "publication_date": "1950-01-01"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}

	var bulk handler.BulkUpdateResponse
	_ = json.Unmarshal(w.Body.Bytes(), &bulk)
	if bulk.Count != 2 {
		t.Fatalf("expected 2 updated, got %d", bulk.Count)
	}

	w = do(t, http.MethodGet, "/api/books/genres", nil)
	var genres handler.StringListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &genres)
	if len(genres.Data) != 2 || genres.Data[0] != "Classics" || genres.Data[1] != "Romance" {
		t.Fatalf("unexpected genres: %v", genres.Data)
	}

	w = do(t, http.MethodGet, "/api/books?publication_date_from=1950-01-01&publication_date_to=1950-01-01", nil)
	var list handler.ListBooksResponse
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if list.Pagination.Total != 2 {
		t.Fatalf("expected 2 books on 1950-01-01, got %d", list.Pagination.Total)
	}
}
