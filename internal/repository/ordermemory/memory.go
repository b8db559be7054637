package ordermemory

import (
	"context"
	"sync"
	"time"

	"pizzaria/internal/entities"
	"pizzaria/internal/service/orders"
)

// Repository is the non-durable fallback store: a mutex-guarded in-process
// list, selected at startup when no database is configured or reachable.
// Contents are lost on restart.
type Repository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func New() *Repository {
	return &Repository{
		orders: make([]entities.Order, 0, 8),
	}
}

func (r *Repository) Save(_ context.Context, order entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return orders.ErrDuplicateOrder
		}
	}

	r.orders = append(r.orders, order)
	return nil
}

// GetAll returns orders newest first, mirroring the durable backend's sort
// on created_at.
func (r *Repository) GetAll(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		result = append(result, r.orders[i])
	}
	return result, nil
}

func (r *Repository) UpdateStatus(_ context.Context, orderID string, status entities.KitchenStatus) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()

			order := r.orders[i]
			return &order, nil
		}
	}

	return nil, orders.ErrOrderNotFound
}

func (r *Repository) Stats(_ context.Context, day time.Time) (*entities.OrderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats entities.OrderStats
	for i := range r.orders {
		order := &r.orders[i]

		if sameDay(order.CreatedAt, day) {
			stats.OrdersToday++
			stats.RevenueToday += order.Total
		}
		switch order.Status {
		case entities.StatusPending:
			stats.Pending++
		case entities.StatusPreparing:
			stats.Preparing++
		}
	}

	return &stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
