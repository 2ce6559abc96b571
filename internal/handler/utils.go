package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func parseIntQuery(c *gin.Context, key string, def int) int {
	if s := c.Query(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return 0, false
	}
	return uint(id), true
}
