package entities

import (
	"encoding/json"
	"time"
)

// CheckoutRequest is an inbound create-order request, PIX or card, before
// validation. DeliveryAddress is passed through unvalidated.
type CheckoutRequest struct {
	ReferenceID     string
	Customer        Customer
	DeliveryAddress json.RawMessage
	Items           []OrderItem
	TotalAmount     int64
	DeliveryFee     int64
}

// Checkout is a validated request headed to the payment provider.
type Checkout struct {
	ReferenceID     string
	Customer        Customer
	DeliveryAddress json.RawMessage
	Items           []OrderItem
	TotalAmount     int64
	DeliveryFee     int64
	PixExpiresAt    time.Time
}

type CardDetails struct {
	Number       string
	Holder       string
	ExpMonth     int
	ExpYear      int
	SecurityCode string
	Type         string // credit or debit
	Installments int
}

// PixPayment is the reshaped provider response for a PIX order: the first QR
// code's text and payment link.
type PixPayment struct {
	OrderID        string
	ReferenceID    string
	QRCodeText     string
	QRCodeLink     string
	ExpirationDate string
}

// CardPayment is the reshaped provider response for a card charge. Status is
// the first charge's status; ProviderResponse carries the charge's
// payment_response for declined reporting, Raw the full provider body.
type CardPayment struct {
	OrderID          string
	ReferenceID      string
	Status           string
	ProviderResponse json.RawMessage
	Raw              json.RawMessage
}

// PaymentStatus is the reshaped provider response for a status lookup.
type PaymentStatus struct {
	OrderID       string
	ReferenceID   string
	Status        string
	PaymentMethod string
	CreatedAt     string
	CustomerName  string
	Total         int64
}

// Notification is an inbound provider webhook, already flattened to the
// first charge.
type Notification struct {
	ReferenceID   string
	Customer      Customer
	Items         []OrderItem
	ChargeStatus  string
	PaymentMethod string
}
