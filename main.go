package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/pkg/logger"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store backend %q: %v", cfg.StoreBackend, err)
	}

	identity := services.NewJWTIdentityProvider(store, cfg.JWTSecret, cfg.TokenTTL, cfg.StoreTimeout, logger.Log)

	userSvc := services.NewUserService(store, identity, cfg.StoreTimeout, logger.Log)
	catalogSvc := services.NewCatalogService(store, cfg.StoreTimeout, logger.Log)
	reviewSvc := services.NewReviewService(store, cfg.StoreTimeout, cfg.StrictProductCheck, logger.Log)
	orderSvc := services.NewOrderService(store, cfg.StoreTimeout, cfg.EnforceOrderTransitions, logger.Log)
	wishlistSvc := services.NewWishlistService(store, cfg.StoreTimeout, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	routes.Register(router, routes.Controllers{
		Auth:     controllers.NewAuthController(userSvc),
		User:     controllers.NewUserController(userSvc),
		Product:  controllers.NewProductController(catalogSvc),
		Review:   controllers.NewReviewController(reviewSvc),
		Order:    controllers.NewOrderController(orderSvc),
		Wishlist: controllers.NewWishlistController(wishlistSvc),
	}, identity)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront service is running", zap.String("port", cfg.Port), zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	logger.Log.Info("Server shutdown complete")
}

// newStore selects the KV backend from configuration.
func newStore(cfg config.Config) (repository.Store, error) {
	switch cfg.StoreBackend {
	case "dynamodb":
		client, err := repository.NewDynamoClient(context.Background())
		if err != nil {
			return nil, err
		}
		return repository.NewDynamoStore(client, cfg.DynamoTable), nil
	case "memory":
		return repository.NewMemoryStore(), nil
	default:
		return repository.NewRedisStore(repository.NewRedisClient(cfg.RedisURL)), nil
	}
}
