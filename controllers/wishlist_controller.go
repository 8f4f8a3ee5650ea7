package controllers

import (
	"net/http"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlist services.WishlistService
}

func NewWishlistController(wishlist services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

// ListWishlist returns the caller's wishlisted products.
func (wc *WishlistController) ListWishlist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	products, svcErr := wc.wishlist.ListWishlist(c.Request.Context(), userID)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": products})
}

// AddToWishlist links a product to the caller's wishlist.
func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if svcErr := wc.wishlist.AddToWishlist(c.Request.Context(), userID, c.Param("productId")); svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveFromWishlist unlinks a product from the caller's wishlist.
func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if svcErr := wc.wishlist.RemoveFromWishlist(c.Request.Context(), userID, c.Param("productId")); svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
