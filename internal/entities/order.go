package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// Order is a confirmed, paid purchase tracked through kitchen fulfillment.
// Orders are only ever created after the payment provider reports "PAID".
type Order struct {
	ID              string
	Customer        Customer
	DeliveryAddress json.RawMessage
	Items           []OrderItem
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
	PaymentMethod   string
	PaymentStatus   string
	Status          KitchenStatus
	CreatedAt       time.Time
	PaidAt          time.Time
	UpdatedAt       time.Time
}

type Customer struct {
	Name  string
	Email string
	Phone string
	TaxID string
}

type OrderItem struct {
	Name       string
	Quantity   int64
	UnitAmount int64 // minor currency units (cents)
}

type KitchenStatus string

const (
	StatusPending   KitchenStatus = "pending"
	StatusPreparing KitchenStatus = "preparing"
	StatusCompleted KitchenStatus = "completed"
	StatusDelivered KitchenStatus = "delivered"
)

func (s KitchenStatus) String() string {
	return string(s)
}

const (
	PaymentStatusPaid = "PAID"

	PaymentMethodPix    = "PIX"
	PaymentMethodCredit = "CREDIT"
	PaymentMethodDebit  = "DEBIT"
)

// OrderConfirmation is the input to the confirmation path. Amounts are in
// cents; the stored Order carries them divided by 100.
type OrderConfirmation struct {
	ReferenceID     string
	Customer        Customer
	DeliveryAddress json.RawMessage
	Items           []OrderItem
	TotalAmount     int64
	DeliveryFee     int64
	PaymentMethod   string
	PaymentStatus   string
}

type OrderStats struct {
	OrdersToday  int64
	Pending      int64
	Preparing    int64
	RevenueToday float64
}

// FallbackOrderID is used when a request carries no reference id.
func FallbackOrderID(now time.Time) string {
	return fmt.Sprintf("DELMONTE_%d", now.Unix())
}

// ItemsTotal is the canonical total recomputation: sum of unit_amount * quantity.
func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitAmount * item.Quantity
	}
	return total
}
