package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pizzaria/internal/entities"
	"pizzaria/pkg/logger"
)

const (
	pixExpiry = 30 * time.Minute

	// Fixed delivery fee, in cents, recorded on webhook-confirmed orders
	// whose original request is no longer available. The stored total is
	// the items sum; the fee only splits off the subtotal.
	webhookDeliveryFee = 500
)

type Checkout struct {
	log     serviceLogger
	gateway Gateway
	orders  Orders
}

func New(log serviceLogger, gateway Gateway, orders Orders) *Checkout {
	return &Checkout{
		log:     log.With(),
		gateway: gateway,
		orders:  orders,
	}
}

// CreatePix validates the request, builds the provider order with a QR code
// expiring in 30 minutes and returns the reshaped QR code data. Nothing is
// persisted here: PIX orders are stored only when the webhook confirms
// payment.
func (s *Checkout) CreatePix(ctx context.Context, request entities.CheckoutRequest) (*entities.PixPayment, error) {
	if len(request.Items) == 0 {
		return nil, ErrNoItems
	}

	order := buildCheckout(request, time.Now())

	payment, err := s.gateway.CreatePixOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create pix order: %w", err)
	}

	return payment, nil
}

// CreateCard charges the card synchronously. Only a "PAID" charge produces a
// stored order; any other charge status is a declined payment carrying the
// provider's details, even though the transport call itself succeeded.
func (s *Checkout) CreateCard(ctx context.Context, request entities.CheckoutRequest, details entities.CardDetails) (*entities.CardPayment, error) {
	if err := validateCard(&details); err != nil {
		return nil, err
	}
	if len(request.Items) == 0 {
		return nil, ErrNoItems
	}

	if details.Type == "" {
		details.Type = "credit"
	}
	if details.Installments == 0 {
		details.Installments = 1
	}

	order := buildCheckout(request, time.Now())

	payment, err := s.gateway.CreateCardOrder(ctx, order, details)
	if err != nil {
		return nil, fmt.Errorf("create card order: %w", err)
	}

	if payment.Status != entities.PaymentStatusPaid {
		return nil, &DeclinedError{
			Status:  payment.Status,
			Details: payment.ProviderResponse,
		}
	}

	confirmation := entities.OrderConfirmation{
		ReferenceID:     order.ReferenceID,
		Customer:        request.Customer,
		DeliveryAddress: request.DeliveryAddress,
		Items:           request.Items,
		TotalAmount:     order.TotalAmount,
		DeliveryFee:     request.DeliveryFee,
		PaymentMethod:   cardPaymentMethod(details.Type),
		PaymentStatus:   entities.PaymentStatusPaid,
	}
	if _, err := s.orders.Confirm(ctx, confirmation); err != nil {
		// The card was already captured: the payment succeeded even if the
		// kitchen board write failed, so the caller still gets a success.
		s.log.Error("failed to store confirmed card order",
			logger.NewField("reference_id", order.ReferenceID),
			logger.NewField("error", err),
		)
	}

	return payment, nil
}

// OrderStatus queries the provider for the current payment state.
func (s *Checkout) OrderStatus(ctx context.Context, orderID string) (*entities.PaymentStatus, error) {
	status, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order status: %w", err)
	}

	return status, nil
}

// ProcessNotification handles a provider webhook. "PAID" confirms and stores
// the order; every other charge status is acknowledged without state change.
func (s *Checkout) ProcessNotification(ctx context.Context, notification entities.Notification) error {
	if notification.ChargeStatus != entities.PaymentStatusPaid {
		s.log.Info("webhook notification ignored",
			logger.NewField("reference_id", notification.ReferenceID),
			logger.NewField("charge_status", notification.ChargeStatus),
		)
		return nil
	}

	confirmation := entities.OrderConfirmation{
		ReferenceID:   notification.ReferenceID,
		Customer:      notification.Customer,
		Items:         notification.Items,
		TotalAmount:   entities.ItemsTotal(notification.Items),
		DeliveryFee:   webhookDeliveryFee,
		PaymentMethod: notification.PaymentMethod,
		PaymentStatus: entities.PaymentStatusPaid,
	}

	if _, err := s.orders.Confirm(ctx, confirmation); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	return nil
}

func buildCheckout(request entities.CheckoutRequest, now time.Time) entities.Checkout {
	referenceID := request.ReferenceID
	if referenceID == "" {
		referenceID = entities.FallbackOrderID(now)
	}

	totalAmount := request.TotalAmount
	if totalAmount == 0 {
		totalAmount = entities.ItemsTotal(request.Items)
	}

	return entities.Checkout{
		ReferenceID:     referenceID,
		Customer:        request.Customer,
		DeliveryAddress: request.DeliveryAddress,
		Items:           request.Items,
		TotalAmount:     totalAmount,
		DeliveryFee:     request.DeliveryFee,
		PixExpiresAt:    now.Add(pixExpiry),
	}
}

func cardPaymentMethod(cardType string) string {
	switch strings.ToLower(cardType) {
	case "credit":
		return entities.PaymentMethodCredit
	case "debit":
		return entities.PaymentMethodDebit
	default:
		return strings.ToUpper(cardType)
	}
}

func validateCard(details *entities.CardDetails) error {
	if details.Number == "" ||
		details.Holder == "" ||
		details.ExpMonth == 0 ||
		details.ExpYear == 0 ||
		details.SecurityCode == "" {
		return ErrCardIncomplete
	}
	return nil
}
