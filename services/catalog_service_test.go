package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedCatalog(t *testing.T, store repository.Store, products []models.Product) {
	t.Helper()
	for _, p := range products {
		data, err := json.Marshal(p)
		require.NoError(t, err)
		require.NoError(t, store.Set(context.Background(), repository.ProductKey(p.ID), data))
	}
}

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Classic Cotton T-Shirt", Price: 1299, Category: "T-Shirts", Brand: "AmarBrand", Description: "Organic cotton tee", InStock: true, Featured: true, Trending: true},
		{ID: "2", Name: "Elegant Summer Dress", Price: 2499, Category: "Dresses", Brand: "ElegantWear", Description: "Summer dress", InStock: true, Featured: true, NewArrival: true},
		{ID: "3", Name: "Denim Jacket", Price: 3499, Category: "Jackets", Brand: "DenimCo", Description: "Rugged denim jacket", InStock: false, Trending: true},
		{ID: "4", Name: "Leather Boots", Price: 4999, Category: "Shoes", Brand: "Stride", Description: "Full-grain leather boots", InStock: true},
	}
}

func newCatalogService(store repository.Store) services.CatalogService {
	logger, _ := zap.NewDevelopment()
	return services.NewCatalogService(store, 3*time.Second, logger)
}

func TestListProducts_NoFiltersReturnsFullCatalog(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{})
	assert.Nil(t, svcErr)
	assert.Len(t, products, 4)
}

func TestListProducts_PriceRangeInclusive(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	min, max := 2000.0, 3000.0
	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{MinPrice: &min, MaxPrice: &max})
	assert.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)

	// Bounds are inclusive on both ends.
	exact := 2499.0
	products, svcErr = svc.ListProducts(context.Background(), &models.ProductFilter{MinPrice: &exact, MaxPrice: &exact})
	assert.Nil(t, svcErr)
	assert.Len(t, products, 1)
}

func TestListProducts_BrandSubstringCaseInsensitive(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{Brand: "denim"})
	assert.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "DenimCo", products[0].Brand)
}

func TestListProducts_CategorySubstring(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{Category: "shirt"})
	assert.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "T-Shirts", products[0].Category)
}

func TestListProducts_SearchAcrossFields(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	// "leather" appears only in product 4's name and description.
	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{Search: "LEATHER"})
	assert.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "4", products[0].ID)
}

func TestListProducts_FiltersAreConjunctive(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	// Trending alone matches products 1 and 3; adding InStock drops 3.
	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{Trending: true})
	assert.Nil(t, svcErr)
	assert.Len(t, products, 2)

	products, svcErr = svc.ListProducts(context.Background(), &models.ProductFilter{Trending: true, InStock: true})
	assert.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestListProducts_FalseBooleanFilterIsNoOp(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	// An unset boolean filter never excludes products whose flag is true.
	products, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{InStock: false})
	assert.Nil(t, svcErr)
	assert.Len(t, products, 4)
}

func TestListProducts_DeterministicOrder(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	first, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{})
	require.Nil(t, svcErr)
	second, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{})
	require.Nil(t, svcErr)
	assert.Equal(t, first, second)
}

func TestGetProduct_NotFound(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newCatalogService(store)

	_, svcErr := svc.GetProduct(context.Background(), "missing")
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestGetProduct_AttachesReviews(t *testing.T) {
	store := repository.NewMemoryStore()
	seedCatalog(t, store, testCatalog())
	svc := newCatalogService(store)

	review := models.Review{ID: "r1", ProductID: "1", UserID: "u1", UserName: "A", Rating: 5}
	data, _ := json.Marshal(review)
	require.NoError(t, store.Set(context.Background(), repository.ReviewKey("1", "r1"), data))

	product, svcErr := svc.GetProduct(context.Background(), "1")
	require.Nil(t, svcErr)
	assert.Equal(t, "1", product.ID)
	require.Len(t, product.ReviewList, 1)
	assert.Equal(t, "r1", product.ReviewList[0].ID)
}

// --- store failure classification ---

type failingStore struct {
	err error
}

func (f *failingStore) Get(_ context.Context, _ string) ([]byte, error) { return nil, f.err }
func (f *failingStore) Set(_ context.Context, _ string, _ []byte) error { return f.err }
func (f *failingStore) Delete(_ context.Context, _ string) error        { return f.err }
func (f *failingStore) ScanPrefix(_ context.Context, _ string) ([]repository.Entry, error) {
	return nil, f.err
}

func TestListProducts_TimeoutMapsTo504(t *testing.T) {
	svc := newCatalogService(&failingStore{err: context.DeadlineExceeded})

	_, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{})
	require.NotNil(t, svcErr)
	assert.Equal(t, 504, svcErr.StatusCode)
}

func TestListProducts_StoreFaultMapsTo500(t *testing.T) {
	svc := newCatalogService(&failingStore{err: errors.New("connection refused")})

	_, svcErr := svc.ListProducts(context.Background(), &models.ProductFilter{})
	require.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Equal(t, "Internal server error", svcErr.Message)
}
