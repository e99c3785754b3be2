package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/light-bringer/backoffice-service/internal/app/catalog/domain"
	ordersdomain "github.com/light-bringer/backoffice-service/internal/app/orders/domain"
)

// respondError maps domain errors onto HTTP status codes. Unclassified
// errors become 500 without leaking internals to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidParameter),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrInvalidStock),
		errors.Is(err, catalogdomain.ErrEmptyName),
		errors.Is(err, catalogdomain.ErrEmptyCategory),
		errors.Is(err, ordersdomain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, ordersdomain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalogdomain.ErrEmptyHistory):
		c.JSON(http.StatusConflict, gin.H{"error": "no price changes to undo"})
	case errors.Is(err, catalogdomain.ErrStoreUnavailable),
		errors.Is(err, ordersdomain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
