package handler

import (
	"time"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

type CreateBookRequest struct {
	Title           string      `json:"title" binding:"required,max=255"`
	Author          string      `json:"author" binding:"required,max=255"`
	ISBN            string      `json:"isbn" binding:"omitempty,max=20,isbn" example:"978-0-13-468599-1"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	Description     string      `json:"description" binding:"max=5000"`
	Genre           string      `json:"genre" binding:"max=100"`
}

type UpdateBookRequest struct {
	Title           *string     `json:"title" binding:"omitempty,max=255"`
	Author          *string     `json:"author" binding:"omitempty,max=255"`
	ISBN            *string     `json:"isbn" binding:"omitempty,max=20,isbn" example:"978-0-13-468599-1"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	Description     *string     `json:"description" binding:"omitempty,max=5000"`
	Genre           *string     `json:"genre" binding:"omitempty,max=100"`
}

// ReplaceBookRequest is the PUT body: title and author must be present.
type ReplaceBookRequest struct {
	Title           string      `json:"title" binding:"required,max=255"`
	Author          string      `json:"author" binding:"required,max=255"`
	ISBN            *string     `json:"isbn" binding:"omitempty,max=20,isbn" example:"978-0-13-468599-1"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	Description     *string     `json:"description" binding:"omitempty,max=5000"`
	Genre           *string     `json:"genre" binding:"omitempty,max=100"`
}

type BulkUpdateRequest struct {
	Author     string         `json:"author" example:"George Orwell"`
	UpdateData map[string]any `json:"update_data" swaggertype:"object"`
}

type Book struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	ISBN            string      `json:"isbn"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	Description     string      `json:"description"`
	Genre           string      `json:"genre"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type BookListItem struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	ISBN            string      `json:"isbn"`
	Genre           string      `json:"genre"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	CreatedAt       time.Time   `json:"created_at"`
}

type CreatedBook struct {
	ID              uint        `json:"id"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	ISBN            string      `json:"isbn"`
	PublicationDate *model.Date `json:"publication_date" swaggertype:"string" example:"1949-06-08"`
	Description     string      `json:"description"`
	Genre           string      `json:"genre"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type CreateBookResponse struct {
	Data CreatedBook `json:"data"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListBooksResponse struct {
	Data       []BookListItem `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type ByAuthorResponse struct {
	Author string         `json:"author"`
	Count  int            `json:"count"`
	Books  []BookListItem `json:"books"`
}

type BulkUpdateResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Books   []BookListItem `json:"books"`
}

type StringListResponse struct {
	Data []string `json:"data"`
}
