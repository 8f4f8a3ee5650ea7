package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// WishlistService manages per-user wishlist link records.
type WishlistService interface {
	ListWishlist(ctx context.Context, userID string) ([]models.Product, *ServiceError)
	AddToWishlist(ctx context.Context, userID, productID string) *ServiceError
	RemoveFromWishlist(ctx context.Context, userID, productID string) *ServiceError
}

type wishlistServiceImpl struct {
	store   repository.Store
	timeout time.Duration
	logger  *zap.Logger
}

func NewWishlistService(store repository.Store, timeout time.Duration, logger *zap.Logger) WishlistService {
	return &wishlistServiceImpl{store: store, timeout: timeout, logger: logger}
}

// ListWishlist resolves link records to products, skipping links whose
// product no longer exists.
func (s *wishlistServiceImpl) ListWishlist(ctx context.Context, userID string) ([]models.Product, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := s.store.ScanPrefix(ctx, repository.WishlistPrefix(userID))
	if err != nil {
		s.logger.Error("Wishlist scan failed", zap.Error(err), zap.String("user_id", userID))
		return nil, storeErr(err)
	}

	products := make([]models.Product, 0, len(entries))
	for _, entry := range entries {
		var productID string
		if err := json.Unmarshal(entry.Value, &productID); err != nil || productID == "" {
			s.logger.Warn("Skipping corrupt wishlist record", zap.String("key", entry.Key))
			continue
		}

		data, err := s.store.Get(ctx, repository.ProductKey(productID))
		if isNotFound(err) {
			// Product removed after it was wishlisted; skip the link.
			continue
		}
		if err != nil {
			return nil, storeErr(err)
		}

		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			s.logger.Warn("Skipping corrupt product record", zap.String("product_id", productID))
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

// AddToWishlist writes the link record after verifying the product exists.
// Re-adding is an idempotent overwrite.
func (s *wishlistServiceImpl) AddToWishlist(ctx context.Context, userID, productID string) *ServiceError {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.Get(ctx, repository.ProductKey(productID)); err != nil {
		if isNotFound(err) {
			return notFoundErr("Product not found")
		}
		return storeErr(err)
	}

	val, _ := json.Marshal(productID)
	if err := s.store.Set(ctx, repository.WishlistKey(userID, productID), val); err != nil {
		s.logger.Error("Wishlist write failed", zap.Error(err),
			zap.String("user_id", userID), zap.String("product_id", productID))
		return storeErr(err)
	}
	return nil
}

// RemoveFromWishlist deletes the link unconditionally; removing an absent
// link is a no-op.
func (s *wishlistServiceImpl) RemoveFromWishlist(ctx context.Context, userID, productID string) *ServiceError {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Delete(ctx, repository.WishlistKey(userID, productID)); err != nil {
		s.logger.Error("Wishlist delete failed", zap.Error(err),
			zap.String("user_id", userID), zap.String("product_id", productID))
		return storeErr(err)
	}
	return nil
}
