package services

import (
	"context"

	"admin-service/aggregate"
	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"
)

// CustomerService backs the customers screen: the spend table, the
// customer detail view with its orders and addresses, and the
// single-document writes.
type CustomerService struct {
	customers repository.CustomerRepo
	orders    repository.OrderRepo
	addresses repository.AddressRepo
	notifier  notify.Notifier
}

func NewCustomerService(customers repository.CustomerRepo, orders repository.OrderRepo, addresses repository.AddressRepo, notifier notify.Notifier) *CustomerService {
	return &CustomerService{customers: customers, orders: orders, addresses: addresses, notifier: notifier}
}

// ListCustomerRows reads both collections, derives the spend rows, and
// applies the search filter. Both reads must succeed before anything is
// aggregated; a partial result is never returned.
func (s *CustomerService) ListCustomerRows(ctx context.Context, query string) ([]aggregate.CustomerRow, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := aggregate.CustomerRows(customers, orders)
	return aggregate.FilterCustomerRows(rows, query), nil
}

// GetCustomer returns one customer with its orders.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, []models.Order, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, nil, err
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.orders.FindByUserID(ctx, customer.UserID)
	if err != nil {
		return nil, nil, err
	}
	return customer, orders, nil
}

// GetCustomerAddresses returns the addresses belonging to a customer's
// user id.
func (s *CustomerService) GetCustomerAddresses(ctx context.Context, id string) ([]models.Address, error) {
	customerID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.addresses.FindByUserID(ctx, customer.UserID)
}

// UpdateCustomer merge-patches a customer document. The existence check
// runs first so a missing document surfaces as not-found rather than as
// a silent upsert.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req CustomerUpdateRequest) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BillingAddressID != nil {
		updates["billing_address_id"] = req.BillingAddressID.String()
	}
	if req.ShippingAddressID != nil {
		updates["shipping_address_id"] = req.ShippingAddressID.String()
	}

	err = s.customers.Update(ctx, customerID, updates)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "customer",
		Action:  "update",
		ID:      id,
		Success: err == nil,
	})
	return err
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	customerID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return err
	}

	err = s.customers.Delete(ctx, customerID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "customer",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}
