package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Title string  `json:"title" binding:"required,max=5"`
	ISBN  *string `json:"isbn" binding:"omitempty,isbn"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst testPayload
	return w, BindAndValidateJSON(c, &dst)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindAndValidateJSON_OK(t *testing.T) {
	_, ok := bind(t, `{"title":"abc","isbn":"978-0-13-468599-1"}`)
	assert.True(t, ok)
}

func TestBindAndValidateJSON_Required(t *testing.T) {
	w, ok := bind(t, `{}`)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "title", resp.Errors[0].Field)
	assert.Equal(t, "required", resp.Errors[0].Rule)
	assert.Equal(t, "title is required", resp.Errors[0].Message)
}

func TestBindAndValidateJSON_Max(t *testing.T) {
	w, ok := bind(t, `{"title":"too long"}`)
	require.False(t, ok)

	resp := decode(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "max", resp.Errors[0].Rule)
}

func TestBindAndValidateJSON_ISBNTag(t *testing.T) {
	w, ok := bind(t, `{"title":"abc","isbn":"12345"}`)
	require.False(t, ok)

	resp := decode(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "isbn", resp.Errors[0].Field)
	assert.Equal(t, "isbn_format", resp.Errors[0].Rule)
	assert.Equal(t, ErrISBNFormat.Error(), resp.Errors[0].Message)

	w, ok = bind(t, `{"title":"abc","isbn":"12X4567890"}`)
	require.False(t, ok)

	resp = decode(t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "isbn_x_position", resp.Errors[0].Rule)
}

func TestBindAndValidateJSON_Syntax(t *testing.T) {
	w, ok := bind(t, `{"title":`)
	require.False(t, ok)

	resp := decode(t, w)
	assert.Equal(t, "INVALID_REQUEST_BODY", resp.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "syntax", resp.Errors[0].Rule)
}
