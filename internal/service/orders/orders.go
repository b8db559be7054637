package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzaria/internal/entities"
)

type Orders struct {
	repository Repository
}

func New(repository Repository) *Orders {
	return &Orders{
		repository: repository,
	}
}

// Confirm persists a paid order for the kitchen board. Confirmations whose
// payment status is anything but "PAID" are rejected: an Order never exists
// in an unpaid state. A replayed confirmation for an already stored order is
// a no-op, so provider webhook retries stay idempotent.
func (s *Orders) Confirm(ctx context.Context, confirmation entities.OrderConfirmation) (*entities.Order, error) {
	if confirmation.PaymentStatus != entities.PaymentStatusPaid {
		return nil, ErrNotPaid
	}

	order := buildOrder(confirmation, time.Now())
	if err := s.repository.Save(ctx, order); err != nil {
		if errors.Is(err, ErrDuplicateOrder) {
			return &order, nil
		}

		return nil, fmt.Errorf("confirm order: %w", err)
	}

	return &order, nil
}

func (s *Orders) List(ctx context.Context) ([]entities.Order, error) {
	ordersList, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return ordersList, nil
}

// UpdateStatus overwrites the kitchen status and refreshes updated_at. Any
// jump between the four valid values is accepted, including backward.
func (s *Orders) UpdateStatus(ctx context.Context, orderID string, status entities.KitchenStatus) (*entities.Order, error) {
	if !isValidKitchenStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return order, nil
}

// Stats aggregates over the process-local calendar date.
func (s *Orders) Stats(ctx context.Context) (*entities.OrderStats, error) {
	stats, err := s.repository.Stats(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	return stats, nil
}

func buildOrder(confirmation entities.OrderConfirmation, now time.Time) entities.Order {
	id := confirmation.ReferenceID
	if id == "" {
		id = entities.FallbackOrderID(now)
	}

	customer := confirmation.Customer
	if customer.Name == "" {
		customer.Name = "Cliente"
	}

	return entities.Order{
		ID:              id,
		Customer:        customer,
		DeliveryAddress: confirmation.DeliveryAddress,
		Items:           confirmation.Items,
		Subtotal:        float64(confirmation.TotalAmount-confirmation.DeliveryFee) / 100,
		DeliveryFee:     float64(confirmation.DeliveryFee) / 100,
		Total:           float64(confirmation.TotalAmount) / 100,
		PaymentMethod:   confirmation.PaymentMethod,
		PaymentStatus:   confirmation.PaymentStatus,
		Status:          entities.StatusPending,
		CreatedAt:       now,
		PaidAt:          now,
		UpdatedAt:       now,
	}
}
