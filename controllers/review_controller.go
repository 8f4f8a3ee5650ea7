package controllers

import (
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews services.ReviewService
}

func NewReviewController(reviews services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// AddReview writes a review for the product in the path.
func (rc *ReviewController) AddReview(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	review, svcErr := rc.reviews.AddReview(c.Request.Context(), userID, c.Param("id"), &req)
	if svcErr != nil {
		abortServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}
