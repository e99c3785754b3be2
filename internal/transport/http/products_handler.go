package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/update_product"
)

type productLister interface {
	Execute(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error)
}

type productCreator interface {
	Execute(ctx context.Context, req *create_product.Request) (string, error)
}

type productUpdater interface {
	Execute(ctx context.Context, req *update_product.Request) error
}

type productDeleter interface {
	Execute(ctx context.Context, productID string) error
}

// ProductsHandler exposes product CRUD and listing.
type ProductsHandler struct {
	list   productLister
	create productCreator
	update productUpdater
	delete productDeleter
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(list productLister, create productCreator, update productUpdater, del productDeleter) *ProductsHandler {
	return &ProductsHandler{list: list, create: create, update: update, delete: del}
}

type productResponse struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	ImageURL    string  `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// List returns one page of products.
func (h *ProductsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := h.list.Execute(c.Request.Context(), &contracts.ListFilter{
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	products := make([]productResponse, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, toProductResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    result.Total,
		"page":     page,
		"per_page": perPage,
	})
}

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CategoryID  string   `json:"category_id"`
	Price       *float64 `json:"price" binding:"required"`
	Stock       int64    `json:"stock"`
	ImageURL    string   `json:"image_url"`
}

// Create adds a product to the catalog.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
		return
	}

	id, err := h.create.Execute(c.Request.Context(), &create_product.Request{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       *req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_id": id})
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"category_id"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	ImageURL    *string  `json:"image_url"`
}

// Update changes the provided product fields, leaving the rest alone.
func (h *ProductsHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.update.Execute(c.Request.Context(), &update_product.Request{
		ProductID:   c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// Delete removes a product.
func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func toProductResponse(p *contracts.ProductDTO) productResponse {
	return productResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
