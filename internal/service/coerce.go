package service

import (
	"strconv"
	"unicode/utf8"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

const (
	maxTitleLen       = 255
	maxAuthorLen      = 255
	maxGenreLen       = 100
	maxISBNLen        = 20
	maxDescriptionLen = 5000
)

type coercer func(field string, v any) (any, *ValidationError)

var bulkCoercers = map[string]coercer{
	"genre":            textColumn(maxGenreLen),
	"description":      textColumn(maxDescriptionLen),
	"isbn":             textColumn(maxISBNLen),
	"publication_date": dateColumn,
}

func textColumn(max int) coercer {
	return func(field string, v any) (any, *ValidationError) {
		s, ok := v.(string)
		if !ok {
			return nil, fieldError(field, "string", field+" must be a string")
		}
		if err := checkLen(field, s, max); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func dateColumn(field string, v any) (any, *ValidationError) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case string:
		if d == "" {
			return nil, nil
		}
		t, err := model.ParseDate(d)
		if err != nil {
			return nil, fieldError(field, "date", field+" must be a date in format YYYY-MM-DD")
		}
		return t, nil
	}

	return nil, fieldError(field, "date", field+" must be a date in format YYYY-MM-DD")
}

func checkLen(field, s string, max int) *ValidationError {
	if utf8.RuneCountInString(s) > max {
		return fieldError(field, "max", field+" must be at most "+strconv.Itoa(max)+" characters")
	}
	return nil
}
