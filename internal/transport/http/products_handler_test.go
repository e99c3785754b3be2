package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/update_product"
)

type stubLister struct {
	result *contracts.ListResult
	filter *contracts.ListFilter
}

func (s *stubLister) Execute(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	s.filter = filter
	return s.result, nil
}

type stubCreator struct {
	id  string
	err error
}

func (s *stubCreator) Execute(ctx context.Context, req *create_product.Request) (string, error) {
	return s.id, s.err
}

type stubUpdater struct{ err error }

func (s *stubUpdater) Execute(ctx context.Context, req *update_product.Request) error { return s.err }

type stubDeleter struct{ err error }

func (s *stubDeleter) Execute(ctx context.Context, productID string) error { return s.err }

func productsRouter(h *ProductsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", h.List)
	r.POST("/api/products", h.Create)
	r.PUT("/api/products/:id", h.Update)
	r.DELETE("/api/products/:id", h.Delete)
	return r
}

func TestListProducts(t *testing.T) {
	lister := &stubLister{result: &contracts.ListResult{
		Products: []*contracts.ProductDTO{{
			ProductID: "p1",
			Name:      "Widget",
			Price:     19.99,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}},
		Total: 41,
	}}
	h := NewProductsHandler(lister, &stubCreator{}, &stubUpdater{}, &stubDeleter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=3&per_page=10&search=widget", nil)
	productsRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, lister.filter)
	assert.Equal(t, 3, lister.filter.Page)
	assert.Equal(t, 10, lister.filter.PerPage)
	assert.Equal(t, "widget", lister.filter.Search)

	var body struct {
		Products []productResponse `json:"products"`
		Total    int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(41), body.Total)
	require.Len(t, body.Products, 1)
	assert.Equal(t, 19.99, body.Products[0].Price)
}

func TestCreateProduct(t *testing.T) {
	t.Run("returns created id", func(t *testing.T) {
		h := NewProductsHandler(&stubLister{}, &stubCreator{id: "new-id"}, &stubUpdater{}, &stubDeleter{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/products",
			strings.NewReader(`{"name": "Widget", "price": 19.99}`))
		req.Header.Set("Content-Type", "application/json")
		productsRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "new-id")
	})

	t.Run("missing price is a bad request", func(t *testing.T) {
		h := NewProductsHandler(&stubLister{}, &stubCreator{}, &stubUpdater{}, &stubDeleter{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/products",
			strings.NewReader(`{"name": "Widget"}`))
		req.Header.Set("Content-Type", "application/json")
		productsRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("unknown product is a 404", func(t *testing.T) {
		h := NewProductsHandler(&stubLister{}, &stubCreator{}, &stubUpdater{}, &stubDeleter{err: domain.ErrProductNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil)
		productsRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
