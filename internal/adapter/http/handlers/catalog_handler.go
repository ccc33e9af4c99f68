package handlers

import (
	"net/http"

	response "github.com/925PRESSUREGLASS/webapp-sub000/internal/adapter/http/dto/response"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static reference tables so clients can build
// pickers without hardcoding ids.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
