package handler

import "github.com/snnyvrz/shelfshare-catalog/internal/model"

// OpKind identifies an operation exposed on the books resource.
type OpKind int

const (
	OpList OpKind = iota
	OpCreate
	OpRetrieve
	OpUpdate
	OpPartialUpdate
	OpDelete
	OpByAuthor
	OpBulkUpdate
	OpAuthors
	OpGenres
)

// Shape is the serialization used for the books an operation returns.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeFull
	ShapeList
	ShapeCreate
)

var opShapes = map[OpKind]Shape{
	OpList:          ShapeList,
	OpCreate:        ShapeCreate,
	OpRetrieve:      ShapeFull,
	OpUpdate:        ShapeFull,
	OpPartialUpdate: ShapeFull,
	OpDelete:        ShapeNone,
	OpByAuthor:      ShapeList,
	OpBulkUpdate:    ShapeList,
	OpAuthors:       ShapeNone,
	OpGenres:        ShapeNone,
}

func shapeFor(op OpKind) Shape {
	return opShapes[op]
}

func render(op OpKind, b model.Book) any {
	switch shapeFor(op) {
	case ShapeFull:
		return toBook(b)
	case ShapeList:
		return toBookListItem(b)
	case ShapeCreate:
		return toCreatedBook(b)
	}
	return nil
}

func renderList(op OpKind, books []model.Book) []BookListItem {
	out := make([]BookListItem, 0, len(books))
	if shapeFor(op) != ShapeList {
		return out
	}
	for _, b := range books {
		out = append(out, toBookListItem(b))
	}
	return out
}

func toBook(b model.Book) Book {
	return Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		PublicationDate: model.NewDate(b.PublicationDate),
		Description:     b.Description,
		Genre:           b.Genre,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookListItem(b model.Book) BookListItem {
	return BookListItem{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		PublicationDate: model.NewDate(b.PublicationDate),
		CreatedAt:       b.CreatedAt,
	}
}

func toCreatedBook(b model.Book) CreatedBook {
	return CreatedBook{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		PublicationDate: model.NewDate(b.PublicationDate),
		Description:     b.Description,
		Genre:           b.Genre,
	}
}
