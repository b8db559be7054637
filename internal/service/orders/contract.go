//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_test
package orders

import (
	"context"
	"time"

	"pizzaria/internal/entities"
)

type Repository interface {
	Save(ctx context.Context, order entities.Order) error
	GetAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.KitchenStatus) (*entities.Order, error)
	Stats(ctx context.Context, day time.Time) (*entities.OrderStats, error)
}
