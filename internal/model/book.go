package model

import (
	"time"
)

type Book struct {
	ID              uint       `gorm:"primaryKey"`
	Title           string     `gorm:"size:255;not null"`
	Author          string     `gorm:"size:255;not null;index:idx_books_author"`
	ISBN            string     `gorm:"column:isbn;size:20;not null;default:'';index:idx_books_isbn_non_empty,unique,where:isbn <> ''"`
	PublicationDate *time.Time `gorm:"type:date"`
	Description     string     `gorm:"type:text;not null;default:''"`
	Genre           string     `gorm:"size:100;not null;default:'';index:idx_books_genre"`
	CreatedAt       time.Time  `gorm:"index:idx_books_created_at"`
	UpdatedAt       time.Time
}

func (b Book) String() string {
	return b.Title + " by " + b.Author
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
