package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Ordering int

const (
	OrderCreatedDesc Ordering = iota
	OrderCreatedAsc
	OrderTitleAsc
	OrderTitleDesc
	OrderAuthorAsc
	OrderAuthorDesc
	OrderPublicationDateAsc
	OrderPublicationDateDesc
)

var orderingKeys = map[string]Ordering{
	"created_at":        OrderCreatedAsc,
	"-created_at":       OrderCreatedDesc,
	"title":             OrderTitleAsc,
	"-title":            OrderTitleDesc,
	"author":            OrderAuthorAsc,
	"-author":           OrderAuthorDesc,
	"publication_date":  OrderPublicationDateAsc,
	"-publication_date": OrderPublicationDateDesc,
}

// ParseOrdering maps an ordering query value to an Ordering. Unknown or
// empty keys fall back to newest first.
func ParseOrdering(key string) Ordering {
	if o, ok := orderingKeys[strings.TrimSpace(key)]; ok {
		return o
	}
	return OrderCreatedDesc
}

func (o Ordering) String() string {
	for k, v := range orderingKeys {
		if v == o {
			return k
		}
	}
	return "-created_at"
}

func (o Ordering) clauses() []string {
	switch o {
	case OrderCreatedAsc:
		return []string{"created_at ASC", "id ASC"}
	case OrderTitleAsc:
		return []string{"LOWER(title) ASC", "created_at DESC", "id DESC"}
	case OrderTitleDesc:
		return []string{"LOWER(title) DESC", "created_at DESC", "id DESC"}
	case OrderAuthorAsc:
		return []string{"LOWER(author) ASC", "created_at DESC", "id DESC"}
	case OrderAuthorDesc:
		return []string{"LOWER(author) DESC", "created_at DESC", "id DESC"}
	case OrderPublicationDateAsc:
		return []string{"publication_date ASC", "created_at DESC", "id DESC"}
	case OrderPublicationDateDesc:
		return []string{"publication_date DESC", "created_at DESC", "id DESC"}
	default:
		return []string{"created_at DESC", "id DESC"}
	}
}

type BookFilter struct {
	Search        string
	GenreContains string
	Author        string
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Ordering      Ordering
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// applyBookFilter adds the WHERE and ORDER BY clauses for f to q.
func applyBookFilter(q *gorm.DB, f BookFilter) *gorm.DB {
	q = applyBookPredicates(q, f)

	for _, c := range f.Ordering.clauses() {
		q = q.Order(c)
	}

	return q
}

func applyBookPredicates(q *gorm.DB, f BookFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Search); s != "" {
		p := containsPattern(s)
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(author) LIKE ? ESCAPE '\')`, p, p)
	}

	if f.GenreContains != "" {
		q = q.Where(`LOWER(genre) LIKE ? ESCAPE '\'`, containsPattern(f.GenreContains))
	}

	if f.Author != "" {
		q = q.Where(`LOWER(author) LIKE ? ESCAPE '\'`, containsPattern(f.Author))
	}

	if f.PublishedFrom != nil {
		q = q.Where("publication_date >= ?", *f.PublishedFrom)
	}

	if f.PublishedTo != nil {
		q = q.Where("publication_date <= ?", *f.PublishedTo)
	}

	return q
}
