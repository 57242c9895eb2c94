package aggregate

import (
	"testing"
	"time"

	"admin-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func customer(userID string, createdAt time.Time) models.Customer {
	return models.Customer{ID: uuid.New(), UserID: userID, CreatedAt: createdAt}
}

func order(userID, total string) models.Order {
	return models.Order{ID: uuid.New(), UserID: userID, TotalAmount: total}
}

func TestCustomerRows_SpendSummary(t *testing.T) {
	now := time.Now()
	customers := []models.Customer{customer("u1", now)}
	orders := []models.Order{
		order("u1", "10.005"),
		order("u1", "5"),
	}

	rows := CustomerRows(customers, orders)

	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].OrderCount)
	// 15.005 rounds half away from zero at two fraction digits.
	assert.Equal(t, "15.01", rows[0].TotalAmount)
}

func TestCustomerRows_NoOrders(t *testing.T) {
	rows := CustomerRows([]models.Customer{customer("u1", time.Now())}, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].OrderCount)
	assert.Equal(t, "0.00", rows[0].TotalAmount)
}

func TestCustomerRows_MalformedAmountCountsAsZero(t *testing.T) {
	customers := []models.Customer{customer("u1", time.Now())}
	orders := []models.Order{
		order("u1", "not-a-number"),
		order("u1", ""),
		order("u1", "3.50"),
	}

	rows := CustomerRows(customers, orders)

	assert.Equal(t, 3, rows[0].OrderCount)
	assert.Equal(t, "3.50", rows[0].TotalAmount)
}

func TestCustomerRows_OrphanOrdersExcluded(t *testing.T) {
	customers := []models.Customer{customer("u1", time.Now())}
	orders := []models.Order{
		order("u1", "1.00"),
		order("ghost", "99.99"),
	}

	rows := CustomerRows(customers, orders)

	assert.Len(t, rows, 1)
	assert.Equal(t, "1.00", rows[0].TotalAmount)
}

// Total of per-row order counts must equal the number of orders whose
// user id belongs to some customer.
func TestCustomerRows_CountConservation(t *testing.T) {
	now := time.Now()
	customers := []models.Customer{
		customer("u1", now),
		customer("u2", now.Add(-time.Hour)),
	}
	orders := []models.Order{
		order("u1", "1"), order("u1", "2"),
		order("u2", "3"),
		order("orphan", "4"),
	}

	rows := CustomerRows(customers, orders)

	sum := 0
	for _, r := range rows {
		sum += r.OrderCount
	}
	assert.Equal(t, 3, sum)
}

func TestCustomerRows_NewestFirst(t *testing.T) {
	now := time.Now()
	customers := []models.Customer{
		customer("old", now.Add(-2*time.Hour)),
		customer("new", now),
		customer("mid", now.Add(-time.Hour)),
	}

	rows := CustomerRows(customers, nil)

	assert.Equal(t, "new", rows[0].Customer.UserID)
	assert.Equal(t, "mid", rows[1].Customer.UserID)
	assert.Equal(t, "old", rows[2].Customer.UserID)
}
