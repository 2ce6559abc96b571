package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare-catalog/internal/metrics"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/service"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

type BookService interface {
	Create(ctx context.Context, in service.CreateBookInput) (*model.Book, error)
	Get(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params repository.BookListParams) (repository.BookListResult, error)
	Update(ctx context.Context, id uint, patch service.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id uint) error
	ByAuthor(ctx context.Context, author string, ordering repository.Ordering) ([]model.Book, error)
	BulkUpdateByAuthor(ctx context.Context, author string, updateData map[string]any) (service.BulkUpdateResult, error)
	Authors(ctx context.Context) ([]string, error)
	Genres(ctx context.Context) ([]string, error)
}

type BookHandler struct {
	svc     BookService
	metrics *metrics.Metrics
}

type Option func(*BookHandler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *BookHandler) { h.metrics = m }
}

func NewBookHandler(svc BookService, opts ...Option) *BookHandler {
	h := &BookHandler{svc: svc}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type route struct {
	op      OpKind
	method  string
	path    string
	handler gin.HandlerFunc
}

func (h *BookHandler) routes() []route {
	return []route{
		{OpList, http.MethodGet, "", h.ListBooks},
		{OpCreate, http.MethodPost, "", h.CreateBook},
		{OpAuthors, http.MethodGet, "/authors", h.ListAuthors},
		{OpGenres, http.MethodGet, "/genres", h.ListGenres},
		{OpByAuthor, http.MethodGet, "/by-author/:author", h.BooksByAuthor},
		{OpBulkUpdate, http.MethodPatch, "/update-by-author", h.UpdateByAuthor},
		{OpRetrieve, http.MethodGet, "/:id", h.GetBookByID},
		{OpUpdate, http.MethodPut, "/:id", h.ReplaceBook},
		{OpPartialUpdate, http.MethodPatch, "/:id", h.UpdateBook},
		{OpDelete, http.MethodDelete, "/:id", h.DeleteBook},
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	for _, rt := range h.routes() {
		books.Handle(rt.method, rt.path, rt.handler)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. ISBN is optional but must be a valid, unused ISBN-10 or ISBN-13 when given.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	in := service.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		Genre:       req.Genre,
	}
	if req.PublicationDate != nil {
		in.PublicationDate = req.PublicationDate.Ptr()
	}

	book, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err, "BOOK_CREATE_FAILED", "failed to create book")
		return
	}

	c.JSON(http.StatusCreated, CreateBookResponse{
		Data: render(OpCreate, *book).(CreatedBook),
	})
}

// ListBooks godoc
// @Summary      List books
// @Description  Paginated list of books with search, filters and ordering
// @Tags         books
// @Produce      json
// @Param        page                   query     int     false  "Page number"      default(1) minimum(1)
// @Param        page_size              query     int     false  "Items per page"   default(20) minimum(1) maximum(100)
// @Param        ordering               query     string  false  "Ordering key" Enums(title,-title,author,-author,publication_date,-publication_date,created_at,-created_at)
// @Param        search                 query     string  false  "Case-insensitive match on title or author"
// @Param        genre__icontains       query     string  false  "Case-insensitive substring of genre"
// @Param        publication_date_from  query     string  false  "Filter: publication_date >= YYYY-MM-DD" example(2015-01-01)
// @Param        publication_date_to    query     string  false  "Filter: publication_date <= YYYY-MM-DD" example(2020-12-31)
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := parseIntQuery(c, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	from, err := parseDateQuery(c, "publication_date_from")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLICATION_DATE_FROM",
			"publication_date_from must be in format YYYY-MM-DD",
		)
		return
	}

	to, err := parseDateQuery(c, "publication_date_to")
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_PUBLICATION_DATE_TO",
			"publication_date_to must be in format YYYY-MM-DD",
		)
		return
	}

	params := repository.BookListParams{
		Page:     page,
		PageSize: pageSize,
		Filter: repository.BookFilter{
			Search:        c.Query("search"),
			GenreContains: c.Query("genre__icontains"),
			PublishedFrom: from,
			PublishedTo:   to,
			Ordering:      repository.ParseOrdering(c.Query("ordering")),
		},
	}

	result, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	totalPages := int((result.Total + int64(pageSize) - 1) / int64(pageSize))

	c.JSON(http.StatusOK, ListBooksResponse{
		Data: renderList(OpList, result.Books),
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      result.Total,
			TotalPages: totalPages,
		},
	})
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "BOOK_FETCH_FAILED", "failed to fetch book")
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: render(OpRetrieve, *book).(Book)})
}

// ReplaceBook godoc
// @Summary      Replace a book
// @Description  Full update of a book. Title and author are required; omitted optional fields keep their value.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      ReplaceBookRequest  true  "Book fields"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) ReplaceBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req ReplaceBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	h.applyPatch(c, OpUpdate, id, service.BookPatch{
		Title:           &req.Title,
		Author:          &req.Author,
		ISBN:            req.ISBN,
		PublicationDate: req.PublicationDate,
		Description:     req.Description,
		Genre:           req.Genre,
	})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book. An empty publication_date clears it.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	h.applyPatch(c, OpPartialUpdate, id, service.BookPatch{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		PublicationDate: req.PublicationDate,
		Description:     req.Description,
		Genre:           req.Genre,
	})
}

func (h *BookHandler) applyPatch(c *gin.Context, op OpKind, id uint, patch service.BookPatch) {
	book, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeServiceError(c, err, "BOOK_UPDATE_FAILED", "failed to update book")
		return
	}

	c.JSON(http.StatusOK, BookResponse{Data: render(op, *book).(Book)})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "BOOK_DELETE_FAILED", "failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

// BooksByAuthor godoc
// @Summary      Books by author
// @Description  Books whose author contains the given text, ignoring case. No match returns count 0.
// @Tags         books
// @Produce      json
// @Param        author    path      string  true   "Author text"
// @Param        ordering  query     string  false  "Ordering key"
// @Success      200  {object}  ByAuthorResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/by-author/{author} [get]
func (h *BookHandler) BooksByAuthor(c *gin.Context) {
	author := c.Param("author")

	books, err := h.svc.ByAuthor(c.Request.Context(), author, repository.ParseOrdering(c.Query("ordering")))
	if err != nil {
		writeServiceError(c, err, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, ByAuthorResponse{
		Author: author,
		Count:  len(books),
		Books:  renderList(OpByAuthor, books),
	})
}

// UpdateByAuthor godoc
// @Summary      Bulk update books by author
// @Description  Applies update_data to every book whose author contains the given text, in one transaction. Only genre, description, publication_date and isbn can be changed; other keys are ignored.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BulkUpdateRequest   true  "Author and fields to update"
// @Success      200      {object}  BulkUpdateResponse
// @Failure      400      {object}  validation.ErrorResponse   "Missing parameters, no valid fields or validation error"
// @Failure      404      {object}  validation.ErrorResponse   "No books for author"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/update-by-author [patch]
func (h *BookHandler) UpdateByAuthor(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, http.StatusBadRequest,
			"INVALID_REQUEST_BODY",
			"invalid request body",
		)
		return
	}

	result, err := h.svc.BulkUpdateByAuthor(c.Request.Context(), req.Author, req.UpdateData)
	if err != nil {
		if errors.Is(err, service.ErrNoBooksFound) {
			writeError(c, http.StatusNotFound,
				"NO_BOOKS_FOUND",
				"no books found for author: "+req.Author,
			)
			return
		}
		writeServiceError(c, err, "BOOK_BULK_UPDATE_FAILED", "failed to update books")
		return
	}

	if h.metrics != nil {
		h.metrics.AddBulkUpdated(result.Count)
	}

	c.JSON(http.StatusOK, BulkUpdateResponse{
		Message: fmt.Sprintf("Updated %d books by %s", result.Count, result.Author),
		Count:   result.Count,
		Books:   renderList(OpBulkUpdate, result.Books),
	})
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Distinct author names, sorted ignoring case
// @Tags         books
// @Produce      json
// @Success      200  {object}  StringListResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	authors, err := h.svc.Authors(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "AUTHOR_LIST_FAILED", "failed to fetch authors")
		return
	}

	c.JSON(http.StatusOK, StringListResponse{Data: authors})
}

// ListGenres godoc
// @Summary      List genres
// @Description  Distinct non-empty genres, sorted ignoring case
// @Tags         books
// @Produce      json
// @Success      200  {object}  StringListResponse
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/genres [get]
func (h *BookHandler) ListGenres(c *gin.Context) {
	genres, err := h.svc.Genres(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "GENRE_LIST_FAILED", "failed to fetch genres")
		return
	}

	c.JSON(http.StatusOK, StringListResponse{Data: genres})
}
