package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService creates and serves orders.
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, *ServiceError)
	UpdateOrderStatus(ctx context.Context, userID, orderID, status string) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	store   repository.Store
	timeout time.Duration
	// enforceTransitions validates status updates against the fulfillment
	// graph. Off by default: the original persisted any known tag.
	enforceTransitions bool
	logger             *zap.Logger
}

func NewOrderService(store repository.Store, timeout time.Duration, enforceTransitions bool, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		store:              store,
		timeout:            timeout,
		enforceTransitions: enforceTransitions,
		logger:             logger,
	}
}

// CreateOrder writes the primary order record and then the owner index
// record. The two writes are sequential and non-atomic; a crash between
// them leaves an order invisible to ListOrders, which is why listing skips
// dangling index entries instead of failing.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, userID string, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	if len(req.Items) == 0 || req.ShippingAddress == nil || req.PaymentMethod == "" {
		return nil, validationErr("Missing required order information")
	}

	// Timestamp-owner id plus a random suffix; two orders from the same
	// caller in the same millisecond cannot collide.
	owner := userID
	if len(owner) > 8 {
		owner = owner[:8]
	}
	orderID := fmt.Sprintf("ORDER-%d-%s-%s", time.Now().UnixMilli(), owner, uuid.NewString()[:8])

	now := time.Now().UTC().Format(time.RFC3339)
	order := &models.Order{
		ID:              orderID,
		UserID:          userID,
		Items:           req.Items,
		ShippingAddress: *req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Total:           req.Total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.writeOrder(ctx, order); err != nil {
		s.logger.Error("Order write failed", zap.Error(err), zap.String("order_id", orderID))
		return nil, storeErr(err)
	}

	indexVal, _ := json.Marshal(orderID)
	if err := s.store.Set(ctx, repository.UserOrderKey(userID, orderID), indexVal); err != nil {
		s.logger.Error("Order index write failed", zap.Error(err),
			zap.String("order_id", orderID), zap.String("user_id", userID))
		return nil, storeErr(err)
	}

	s.logger.Info("Order created", zap.String("order_id", orderID), zap.String("user_id", userID))
	return order, nil
}

// ListOrders resolves the caller's index records to primary orders, skipping
// any index entry whose order record is missing, and sorts newest first.
func (s *orderServiceImpl) ListOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entries, err := s.store.ScanPrefix(ctx, repository.UserOrderPrefix(userID))
	if err != nil {
		s.logger.Error("Order index scan failed", zap.Error(err), zap.String("user_id", userID))
		return nil, storeErr(err)
	}

	orders := make([]models.Order, 0, len(entries))
	for _, entry := range entries {
		var orderID string
		if err := json.Unmarshal(entry.Value, &orderID); err != nil || orderID == "" {
			s.logger.Warn("Skipping corrupt order index record", zap.String("key", entry.Key))
			continue
		}

		data, err := s.store.Get(ctx, repository.OrderKey(orderID))
		if isNotFound(err) {
			// Dangling index entry; the primary record never landed.
			continue
		}
		if err != nil {
			return nil, storeErr(err)
		}

		var order models.Order
		if err := json.Unmarshal(data, &order); err != nil {
			s.logger.Warn("Skipping corrupt order record", zap.String("order_id", orderID))
			continue
		}
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders, nil
}

// GetOrder fetches an order by id. Ownership is checked against the primary
// record's owner field; the index is only a listing convenience.
func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	order, svcErr := s.fetchOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.UserID != userID {
		return nil, forbiddenErr("Access denied")
	}
	return order, nil
}

// UpdateOrderStatus persists a new status tag on an owned order. Transition
// legality is only checked when the service runs with enforcement on.
func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, userID, orderID, status string) (*models.Order, *ServiceError) {
	if !models.IsValidOrderStatus(status) {
		return nil, validationErr("Unknown order status")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	order, svcErr := s.fetchOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.UserID != userID {
		return nil, forbiddenErr("Access denied")
	}

	if s.enforceTransitions && !models.IsValidOrderTransition(order.Status, status) {
		return nil, validationErr(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.writeOrder(ctx, order); err != nil {
		s.logger.Error("Order status write failed", zap.Error(err), zap.String("order_id", orderID))
		return nil, storeErr(err)
	}
	return order, nil
}

func (s *orderServiceImpl) fetchOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError) {
	data, err := s.store.Get(ctx, repository.OrderKey(orderID))
	if isNotFound(err) {
		return nil, notFoundErr("Order not found")
	}
	if err != nil {
		s.logger.Error("Order fetch failed", zap.Error(err), zap.String("order_id", orderID))
		return nil, storeErr(err)
	}
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		s.logger.Error("Order record corrupt", zap.Error(err), zap.String("order_id", orderID))
		return nil, storeErr(err)
	}
	return &order, nil
}

func (s *orderServiceImpl) writeOrder(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, repository.OrderKey(order.ID), data)
}
