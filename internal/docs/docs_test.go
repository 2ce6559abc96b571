package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc returned error: %v", err)
	}

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}

	if parsed.BasePath != "/api" {
		t.Errorf("expected basePath /api, got %q", parsed.BasePath)
	}
	for _, p := range []string{"/books", "/books/{id}", "/books/by-author/{author}", "/books/update-by-author"} {
		if _, ok := parsed.Paths[p]; !ok {
			t.Errorf("expected path %s in swagger doc", p)
		}
	}
}
