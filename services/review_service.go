package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService writes product reviews.
type ReviewService interface {
	AddReview(ctx context.Context, userID, productID string, req *models.AddReviewRequest) (*models.Review, *ServiceError)
}

type reviewServiceImpl struct {
	store   repository.Store
	timeout time.Duration
	// strictProductCheck rejects reviews for missing products. Off by
	// default: the original storefront never checked.
	strictProductCheck bool
	logger             *zap.Logger
}

func NewReviewService(store repository.Store, timeout time.Duration, strictProductCheck bool, logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{
		store:              store,
		timeout:            timeout,
		strictProductCheck: strictProductCheck,
		logger:             logger,
	}
}

// AddReview validates the rating, denormalizes the author's display name
// from the profile record and writes the review under the product's review
// prefix. The verified flag is set unconditionally; purchase verification
// is out of scope.
func (s *reviewServiceImpl) AddReview(ctx context.Context, userID, productID string, req *models.AddReviewRequest) (*models.Review, *ServiceError) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, validationErr("Rating must be between 1 and 5")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.strictProductCheck {
		if _, err := s.store.Get(ctx, repository.ProductKey(productID)); err != nil {
			if isNotFound(err) {
				return nil, notFoundErr("Product not found")
			}
			return nil, storeErr(err)
		}
	}

	userName := "Anonymous"
	if data, err := s.store.Get(ctx, repository.UserKey(userID)); err == nil {
		var profile models.UserProfile
		if err := json.Unmarshal(data, &profile); err == nil && profile.Name != "" {
			userName = profile.Name
		}
	}

	// Timestamp-caller id plus a random suffix so two reviews in the same
	// millisecond cannot collide.
	reviewID := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), userID, uuid.NewString()[:8])

	review := &models.Review{
		ID:        reviewID,
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Verified:  true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(review)
	if err != nil {
		return nil, storeErr(err)
	}
	if err := s.store.Set(ctx, repository.ReviewKey(productID, reviewID), data); err != nil {
		s.logger.Error("Review write failed", zap.Error(err), zap.String("product_id", productID))
		return nil, storeErr(err)
	}

	return review, nil
}
