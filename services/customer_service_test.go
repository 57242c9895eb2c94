package services_test

import (
	"context"
	"testing"
	"time"

	"admin-service/models"
	"admin-service/repository"
	"admin-service/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
}

func (m *mockCustomerRepo) FindAll(_ context.Context) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *mockCustomerRepo) FindByUserID(_ context.Context, userID string) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) Put(_ context.Context, customer *models.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) Update(_ context.Context, id uuid.UUID, _ map[string]interface{}) error {
	if _, ok := m.customers[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (m *mockCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.customers, id)
	return nil
}

type mockOrderRepo struct {
	orders []models.Order
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	return m.orders, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockOrderRepo) FindByUserID(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Put(_ context.Context, order *models.Order) error {
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) Update(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error {
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type mockAddressRepo struct {
	addresses []models.Address
}

func (m *mockAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Address, error) {
	for i := range m.addresses {
		if m.addresses[i].ID == id {
			return &m.addresses[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockAddressRepo) FindByUserID(_ context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	for _, a := range m.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAddressRepo) Put(_ context.Context, address *models.Address) error {
	m.addresses = append(m.addresses, *address)
	return nil
}

func (m *mockAddressRepo) Update(_ context.Context, _ uuid.UUID, _ map[string]interface{}) error {
	return nil
}

func (m *mockAddressRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func TestListCustomerRows_JoinsSpend(t *testing.T) {
	customerRepo := newMockCustomerRepo()
	orderRepo := &mockOrderRepo{}
	svc := services.NewCustomerService(customerRepo, orderRepo, &mockAddressRepo{}, &recordingNotifier{})

	customerRepo.Put(context.Background(), &models.Customer{
		ID: uuid.New(), UserID: "u1", CreatedAt: time.Now(),
	})
	orderRepo.Put(context.Background(), &models.Order{ID: uuid.New(), UserID: "u1", TotalAmount: "12.50"})
	orderRepo.Put(context.Background(), &models.Order{ID: uuid.New(), UserID: "u1", TotalAmount: "7.50"})

	rows, err := svc.ListCustomerRows(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].OrderCount)
	assert.Equal(t, "20.00", rows[0].TotalAmount)
}

func TestListCustomerRows_AppliesSearch(t *testing.T) {
	customerRepo := newMockCustomerRepo()
	svc := services.NewCustomerService(customerRepo, &mockOrderRepo{}, &mockAddressRepo{}, &recordingNotifier{})

	customerRepo.Put(context.Background(), &models.Customer{ID: uuid.New(), UserID: "alice-1"})
	customerRepo.Put(context.Background(), &models.Customer{ID: uuid.New(), UserID: "bob-2"})

	rows, err := svc.ListCustomerRows(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "alice-1", rows[0].Customer.UserID)
}

func TestGetCustomer_ReturnsOrders(t *testing.T) {
	customerRepo := newMockCustomerRepo()
	orderRepo := &mockOrderRepo{}
	svc := services.NewCustomerService(customerRepo, orderRepo, &mockAddressRepo{}, &recordingNotifier{})

	customer := &models.Customer{ID: uuid.New(), UserID: "u1"}
	customerRepo.Put(context.Background(), customer)
	orderRepo.Put(context.Background(), &models.Order{ID: uuid.New(), UserID: "u1", TotalAmount: "5"})
	orderRepo.Put(context.Background(), &models.Order{ID: uuid.New(), UserID: "other", TotalAmount: "9"})

	got, orders, err := svc.GetCustomer(context.Background(), customer.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, customer.UserID, got.UserID)
	assert.Len(t, orders, 1)
}

func TestGetCustomer_NotFound(t *testing.T) {
	svc := services.NewCustomerService(newMockCustomerRepo(), &mockOrderRepo{}, &mockAddressRepo{}, &recordingNotifier{})

	_, _, err := svc.GetCustomer(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateCustomer_EmitsNotification(t *testing.T) {
	customerRepo := newMockCustomerRepo()
	notifier := &recordingNotifier{}
	svc := services.NewCustomerService(customerRepo, &mockOrderRepo{}, &mockAddressRepo{}, notifier)

	customer := &models.Customer{ID: uuid.New(), UserID: "u1"}
	customerRepo.Put(context.Background(), customer)

	name := "Ada"
	err := svc.UpdateCustomer(context.Background(), customer.ID.String(), services.CustomerUpdateRequest{Name: &name})

	assert.NoError(t, err)
	assert.Len(t, notifier.events, 1)
	assert.Equal(t, "customer", notifier.events[0].Entity)
	assert.True(t, notifier.events[0].Success)
}
