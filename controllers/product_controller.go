package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog services.CatalogService
}

func NewProductController(catalog services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// ListProducts applies the query-string filters to the full catalog.
func (pc *ProductController) ListProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, svcErr := pc.catalog.ListProducts(c.Request.Context(), filter)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns a single product with its reviews attached.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, svcErr := pc.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// SeedCatalog upserts the sample catalog, or the products supplied in the
// request body when present.
func (pc *ProductController) SeedCatalog(c *gin.Context) {
	var body struct {
		Products []models.Product `json:"products"`
	}
	// An empty body means "seed the default catalog".
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	products := body.Products
	if len(products) == 0 {
		products = services.DefaultCatalog()
	}

	if svcErr := pc.catalog.SeedProducts(c.Request.Context(), products); svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sample data initialized"})
}

// parseProductFilter reads the catalog filter parameters from the query
// string. Boolean filters only apply when the parameter is literally "true";
// "false" or garbage never excludes anything, matching the filter contract.
func parseProductFilter(c *gin.Context) (*models.ProductFilter, error) {
	filter := &models.ProductFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Brand:      strings.TrimSpace(c.Query("brand")),
		Search:     strings.TrimSpace(c.Query("search")),
		InStock:    c.Query("inStock") == "true",
		Featured:   c.Query("featured") == "true",
		Trending:   c.Query("trending") == "true",
		NewArrival: c.Query("newArrival") == "true",
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value for 'minPrice'")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value for 'maxPrice'")
		}
		filter.MaxPrice = &v
	}
	return filter, nil
}
