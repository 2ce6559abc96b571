package service

import "strings"

// BulkFields is the versioned set of columns a bulk update may write.
type BulkFields struct {
	Version int
	Fields  []string
}

const currentBulkFieldsVersion = 1

func DefaultBulkFields() BulkFields {
	return NewBulkFields(currentBulkFieldsVersion, "genre", "description", "publication_date", "isbn")
}

// NewBulkFields keeps only fields known to the bulk coercer, dropping
// duplicates and blanks.
func NewBulkFields(version int, fields ...string) BulkFields {
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if _, ok := bulkCoercers[f]; !ok || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}

	return BulkFields{Version: version, Fields: out}
}

func (b BulkFields) Allows(field string) bool {
	for _, f := range b.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// restrict returns the subset of data whose keys are allowed.
func (b BulkFields) restrict(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if b.Allows(k) {
			out[k] = v
		}
	}
	return out
}
