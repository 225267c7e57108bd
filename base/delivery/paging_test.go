package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/auctionhouse/domain"
)

func TestParsePaging(t *testing.T) {
	e := echo.New()
	tests := []struct {
		query  string
		offset int
		limit  int
		err    error
	}{
		{"", 0, 20, nil},
		{"offset=5&limit=100", 5, 100, nil},
		{"limit=1", 0, 1, nil},
		{"offset=-1", 0, 0, domain.ErrBadParamInput},
		{"offset=a", 0, 0, domain.ErrBadParamInput},
		{"limit=0", 0, 0, domain.ErrBadParamInput},
		{"limit=101", 0, 0, domain.ErrBadParamInput},
	}
	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil), httptest.NewRecorder())
		offset, limit, err := ParsePaging(c, 20, 100)
		assert.Equal(t, tt.err, err, tt.query)
		assert.Equal(t, tt.offset, offset, tt.query)
		assert.Equal(t, tt.limit, limit, tt.query)
	}
}
