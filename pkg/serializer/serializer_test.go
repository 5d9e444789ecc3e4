package serializer_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/book-service/pkg/serializer"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializer(t *testing.T) {
	t.Parallel()
	e := echo.New()
	s := serializer.JSONSerializer{}

	t.Run("serialize", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), w)

		require.NoError(t, s.Serialize(c, map[string]int{"totalCount": 3}, ""))
		require.Equal(t, `{"totalCount":3}`, strings.Trim(w.Body.String(), "\n"))
	})
	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`)), httptest.NewRecorder())

		var v struct {
			Title string `json:"title"`
		}
		err := s.Deserialize(c, &v)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusBadRequest, he.Code)
	})
}
