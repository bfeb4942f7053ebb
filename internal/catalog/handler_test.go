package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservecold/storefront/pkg/httputil"
)

func newTestHandler() *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(New(Seed()), logger)
	handler := NewHandler(service, logger)

	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func TestListEndpoint_DefaultSort(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Data.Products, 6)
	assert.Equal(t, All, resp.Data.Filter.Category)
	assert.Equal(t, SortNameAsc, resp.Data.Filter.Sort)
	assert.Empty(t, resp.Data.Query)
}

func TestListEndpoint_FilteredAndSorted(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET",
		"/api/v1/products?category=%D0%9C%D0%BE%D0%BD%D0%BE%D1%81%D0%BE%D1%80%D1%82&sort=price-asc", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Products, 3)
	assert.Equal(t, "Моносорт", resp.Data.Filter.Category)
	assert.Equal(t, int64(2299), resp.Data.Products[0].Price)
	assert.Equal(t, int64(2499), resp.Data.Products[2].Price)
}

func TestListEndpoint_UnknownQueryValuesFallBack(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products?sort=bogus&category=bogus", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Products, 6)
	assert.Equal(t, SortNameAsc, resp.Data.Filter.Sort)
}

func TestGetEndpoint(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products/ethiopian-reserve", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Резерв Эфиопский", resp.Data.Name)
}

func TestGetEndpoint_NotFound(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products/missing", nil))

	require.Equal(t, 404, rec.Code)

	var resp httputil.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestFeaturedEndpoint(t *testing.T) {
	r := newTestHandler()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products/featured", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data []Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}
