package pagbank

import (
	"fmt"
	"strings"
	"time"

	"pizzaria/internal/entities"
)

// Provider-imposed constraints on the outbound payload.
const (
	maxItemNameLength = 100

	defaultCustomerName  = "Cliente DEL MONTE"
	defaultCustomerEmail = "cliente@delmonte.com"
	defaultCustomerTaxID = "12345678901"
)

// PagBank expects expiration timestamps at the provider's local offset.
var brazilOffset = time.FixedZone("-03:00", -3*60*60)

func fromDomainPix(checkout *entities.Checkout, webhookURL string) *orderRequest {
	req := baseRequest(checkout, webhookURL)
	req.QRCodes = []qrCodeRequest{
		{
			Amount:         amount{Value: checkout.TotalAmount},
			ExpirationDate: checkout.PixExpiresAt.In(brazilOffset).Format("2006-01-02T15:04:05-07:00"),
		},
	}
	return req
}

func fromDomainCard(checkout *entities.Checkout, details *entities.CardDetails, webhookURL string) *orderRequest {
	req := baseRequest(checkout, webhookURL)
	req.Charges = []chargeRequest{
		{
			ReferenceID: "charge_" + details.Type,
			Description: "Pedido Pizzaria DEL MONTE - " + toUpperMethod(details.Type),
			Amount: amount{
				Value:    checkout.TotalAmount,
				Currency: "BRL",
			},
			PaymentMethod: paymentMethod{
				Type:         "CREDIT_CARD",
				Installments: details.Installments,
				Capture:      true,
				Card: card{
					Number:       details.Number,
					ExpMonth:     details.ExpMonth,
					ExpYear:      details.ExpYear,
					SecurityCode: details.SecurityCode,
					Holder:       cardHolder{Name: details.Holder},
					Store:        false,
				},
			},
		},
	}
	return req
}

func baseRequest(checkout *entities.Checkout, webhookURL string) *orderRequest {
	items := make([]itemRequest, 0, len(checkout.Items))
	for i, item := range checkout.Items {
		items = append(items, itemRequest{
			ReferenceID: syntheticItemID(i),
			Name:        truncateName(item.Name),
			Quantity:    item.Quantity,
			UnitAmount:  item.UnitAmount,
		})
	}

	customer := customerRequest{
		Name:  checkout.Customer.Name,
		Email: checkout.Customer.Email,
		TaxID: checkout.Customer.TaxID,
		Phones: []phoneRequest{
			{Country: "55", Area: "21", Number: "999999999", Type: "MOBILE"},
		},
	}
	if customer.Name == "" {
		customer.Name = defaultCustomerName
	}
	if customer.Email == "" {
		customer.Email = defaultCustomerEmail
	}
	if customer.TaxID == "" {
		customer.TaxID = defaultCustomerTaxID
	}

	return &orderRequest{
		ReferenceID:      checkout.ReferenceID,
		Customer:         customer,
		Items:            items,
		NotificationURLs: []string{webhookURL},
	}
}

func toPixPayment(resp *orderResponse) *entities.PixPayment {
	payment := &entities.PixPayment{
		OrderID:     resp.ID,
		ReferenceID: resp.ReferenceID,
	}

	if len(resp.QRCodes) == 0 {
		return payment
	}

	qrCode := resp.QRCodes[0]
	payment.QRCodeText = qrCode.Text
	payment.ExpirationDate = qrCode.ExpirationDate
	if len(qrCode.Links) > 0 {
		payment.QRCodeLink = qrCode.Links[0].Href
	}

	return payment
}

func toCardPayment(resp *orderResponse, raw []byte) *entities.CardPayment {
	payment := &entities.CardPayment{
		OrderID:     resp.ID,
		ReferenceID: resp.ReferenceID,
		Status:      "UNKNOWN",
		Raw:         raw,
	}

	if len(resp.Charges) > 0 {
		payment.Status = resp.Charges[0].Status
		payment.ProviderResponse = resp.Charges[0].PaymentResponse
	}

	return payment
}

func toPaymentStatus(resp *orderResponse) *entities.PaymentStatus {
	status := &entities.PaymentStatus{
		OrderID:       resp.ID,
		ReferenceID:   resp.ReferenceID,
		Status:        "UNKNOWN",
		PaymentMethod: "UNKNOWN",
		CreatedAt:     resp.CreatedAt,
		CustomerName:  resp.Customer.Name,
		Total:         itemsTotal(resp.Items),
	}

	switch {
	case len(resp.Charges) > 0:
		charge := resp.Charges[0]
		status.Status = charge.Status
		status.PaymentMethod = "CARD"
		if charge.PaymentMethod.Type != "" {
			status.PaymentMethod = charge.PaymentMethod.Type
		}
	case len(resp.QRCodes) > 0:
		// PIX order with no charge yet: still waiting for payment.
		status.Status = "WAITING"
		status.PaymentMethod = entities.PaymentMethodPix
	}

	return status
}

// truncateName counts characters, not bytes, so accented item names are
// neither over-truncated nor cut mid-rune.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxItemNameLength {
		return string(runes[:maxItemNameLength])
	}
	return name
}

func syntheticItemID(index int) string {
	return fmt.Sprintf("item_%d", index)
}

func itemsTotal(items []itemRequest) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitAmount * item.Quantity
	}
	return total
}

func toUpperMethod(paymentType string) string {
	return strings.ToUpper(paymentType)
}
