package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/backoffice-service/internal/app/catalog/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/catalog/usecases/create_category"
)

type categoryLister interface {
	Execute(ctx context.Context) ([]*contracts.CategoryDTO, error)
}

type categoryCreator interface {
	Execute(ctx context.Context, req *create_category.Request) (string, error)
}

// CategoriesHandler exposes category listing and creation.
type CategoriesHandler struct {
	list   categoryLister
	create categoryCreator
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(list categoryLister, create categoryCreator) *CategoriesHandler {
	return &CategoriesHandler{list: list, create: create}
}

// List returns all categories.
func (h *CategoriesHandler) List(c *gin.Context) {
	categories, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{
			"category_id": cat.CategoryID,
			"name":        cat.Name,
			"description": cat.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create adds a category.
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	id, err := h.create.Execute(c.Request.Context(), &create_category.Request{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category_id": id})
}
