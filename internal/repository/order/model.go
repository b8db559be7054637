package order

import "time"

// OrderDB mirrors a row of the pedidos table. Customer, delivery address and
// items are stored as JSONB.
type OrderDB struct {
	ID              string
	Customer        []byte
	DeliveryAddress []byte
	Items           []byte
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	CreatedAt       time.Time
	PaidAt          time.Time
	UpdatedAt       time.Time
}
