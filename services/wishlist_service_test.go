package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWishlistService(store repository.Store) services.WishlistService {
	logger, _ := zap.NewDevelopment()
	return services.NewWishlistService(store, 3*time.Second, logger)
}

func writeProduct(t *testing.T, store repository.Store, p models.Product) {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), repository.ProductKey(p.ID), data))
}

func TestAddToWishlist_MissingProduct(t *testing.T) {
	svc := newWishlistService(repository.NewMemoryStore())

	svcErr := svc.AddToWishlist(context.Background(), "u1", "no-such-product")
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestAddToWishlist_Idempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newWishlistService(store)
	ctx := context.Background()
	writeProduct(t, store, models.Product{ID: "p1", Name: "Tee"})

	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))
	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))

	products, svcErr := svc.ListWishlist(ctx, "u1")
	require.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestRemoveFromWishlist_AbsentLinkIsNoOp(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newWishlistService(store)
	ctx := context.Background()
	writeProduct(t, store, models.Product{ID: "p1", Name: "Tee"})

	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))
	assert.Nil(t, svc.RemoveFromWishlist(ctx, "u1", "p9"))

	products, svcErr := svc.ListWishlist(ctx, "u1")
	require.Nil(t, svcErr)
	assert.Len(t, products, 1)
}

func TestRemoveFromWishlist_RemovesLink(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newWishlistService(store)
	ctx := context.Background()
	writeProduct(t, store, models.Product{ID: "p1", Name: "Tee"})

	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))
	require.Nil(t, svc.RemoveFromWishlist(ctx, "u1", "p1"))

	products, svcErr := svc.ListWishlist(ctx, "u1")
	require.Nil(t, svcErr)
	assert.Empty(t, products)
}

func TestListWishlist_SkipsDeletedProducts(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newWishlistService(store)
	ctx := context.Background()
	writeProduct(t, store, models.Product{ID: "p1", Name: "Tee"})
	writeProduct(t, store, models.Product{ID: "p2", Name: "Dress"})

	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))
	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p2"))

	// Product removed from the catalog after being wishlisted.
	require.NoError(t, store.Delete(ctx, repository.ProductKey("p1")))

	products, svcErr := svc.ListWishlist(ctx, "u1")
	require.Nil(t, svcErr)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestListWishlist_ScopedToOwner(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := newWishlistService(store)
	ctx := context.Background()
	writeProduct(t, store, models.Product{ID: "p1", Name: "Tee"})

	require.Nil(t, svc.AddToWishlist(ctx, "u1", "p1"))

	products, svcErr := svc.ListWishlist(ctx, "u2")
	require.Nil(t, svcErr)
	assert.Empty(t, products)
}
