package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrISBNFormat     = errors.New("ISBN must be 10 or 13 characters (digits or X for ISBN-10).")
	ErrISBNCheckDigit = errors.New("In ISBN-10, 'X' is allowed only as the last character.")
)

var (
	isbn10RE = regexp.MustCompile(`^[0-9X]{10}$`)
	isbn13RE = regexp.MustCompile(`^[0-9]{13}$`)
)

var isbnStripper = strings.NewReplacer("-", "", " ", "")

func NormalizeISBN(s string) string {
	return strings.ToUpper(isbnStripper.Replace(s))
}

// CheckISBN validates the shape of s. Blank input is accepted.
func CheckISBN(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	clean := NormalizeISBN(s)

	if !isbn10RE.MatchString(clean) && !isbn13RE.MatchString(clean) {
		return ErrISBNFormat
	}

	if len(clean) == 10 && strings.Contains(clean[:9], "X") {
		return ErrISBNCheckDigit
	}

	return nil
}

// ISBNRule names the rule behind a CheckISBN error, as reported in FieldError.Rule.
func ISBNRule(err error) string {
	switch {
	case errors.Is(err, ErrISBNCheckDigit):
		return "isbn_x_position"
	case errors.Is(err, ErrISBNFormat):
		return "isbn_format"
	default:
		return "isbn"
	}
}
