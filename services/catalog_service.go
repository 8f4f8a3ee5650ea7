package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// CatalogService serves product listings and single-product lookups.
type CatalogService interface {
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, productID string) (*models.ProductWithReviews, *ServiceError)
	SeedProducts(ctx context.Context, products []models.Product) *ServiceError
}

type catalogServiceImpl struct {
	store   repository.Store
	timeout time.Duration
	logger  *zap.Logger
}

func NewCatalogService(store repository.Store, timeout time.Duration, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{store: store, timeout: timeout, logger: logger}
}

// ListProducts scans the full catalog and applies the filter. Output order
// follows the key-sorted scan, so it is stable for a fixed store state.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := s.store.ScanPrefix(ctx, repository.ProductPrefix)
	if err != nil {
		s.logger.Error("Product scan failed", zap.Error(err))
		return nil, storeErr(err)
	}

	products := make([]models.Product, 0, len(entries))
	for _, entry := range entries {
		var p models.Product
		if err := json.Unmarshal(entry.Value, &p); err != nil {
			s.logger.Warn("Skipping corrupt product record", zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		if matchesFilter(&p, filter) {
			products = append(products, p)
		}
	}
	return products, nil
}

// matchesFilter applies the catalog predicates with AND semantics. Absent
// filters are no-ops; boolean filters only ever narrow when set true.
func matchesFilter(p *models.Product, f *models.ProductFilter) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !containsFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	if f.Trending && !p.Trending {
		return false
	}
	if f.NewArrival && !p.NewArrival {
		return false
	}
	if f.Search != "" {
		if !containsFold(p.Name, f.Search) &&
			!containsFold(p.Description, f.Search) &&
			!containsFold(p.Category, f.Search) &&
			!containsFold(p.Brand, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// GetProduct fetches a product and attaches its reviews.
func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID string) (*models.ProductWithReviews, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.store.Get(ctx, repository.ProductKey(productID))
	if isNotFound(err) {
		return nil, notFoundErr("Product not found")
	}
	if err != nil {
		s.logger.Error("Product fetch failed", zap.Error(err), zap.String("product_id", productID))
		return nil, storeErr(err)
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		s.logger.Error("Product record corrupt", zap.Error(err), zap.String("product_id", productID))
		return nil, storeErr(err)
	}

	entries, err := s.store.ScanPrefix(ctx, repository.ReviewPrefix(productID))
	if err != nil {
		s.logger.Error("Review scan failed", zap.Error(err), zap.String("product_id", productID))
		return nil, storeErr(err)
	}

	reviews := make([]models.Review, 0, len(entries))
	for _, entry := range entries {
		var r models.Review
		if err := json.Unmarshal(entry.Value, &r); err != nil {
			s.logger.Warn("Skipping corrupt review record", zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		reviews = append(reviews, r)
	}

	return &models.ProductWithReviews{Product: product, ReviewList: reviews}, nil
}

// SeedProducts upserts the given products. Used by the admin seed endpoint.
func (s *catalogServiceImpl) SeedProducts(ctx context.Context, products []models.Product) *ServiceError {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for _, p := range products {
		if p.ID == "" {
			return validationErr("Product id is required")
		}
		data, err := json.Marshal(p)
		if err != nil {
			return storeErr(err)
		}
		if err := s.store.Set(ctx, repository.ProductKey(p.ID), data); err != nil {
			s.logger.Error("Product seed write failed", zap.Error(err), zap.String("product_id", p.ID))
			return storeErr(err)
		}
	}
	s.logger.Info("Catalog seeded", zap.Int("count", len(products)))
	return nil
}
