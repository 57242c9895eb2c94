package services

import (
	"context"

	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"
)

// OrderService backs the orders screen. Orders are created by the
// storefront checkout, not here; the dashboard reads them, patches the
// payment status, and occasionally deletes one.
type OrderService struct {
	orders   repository.OrderRepo
	notifier notify.Notifier
}

func NewOrderService(orders repository.OrderRepo, notifier notify.Notifier) *OrderService {
	return &OrderService{orders: orders, notifier: notifier}
}

// ListOrders returns the full collection in store order.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByID(ctx, orderID)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, req OrderUpdateRequest) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}

	err = s.orders.Update(ctx, orderID, updates)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "order",
		Action:  "update",
		ID:      id,
		Success: err == nil,
	})
	return err
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return err
	}

	err = s.orders.Delete(ctx, orderID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "order",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}
