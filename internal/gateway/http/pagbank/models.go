package pagbank

import "encoding/json"

// Wire shapes of the PagBank orders API. Only the fields this service reads
// or writes are modelled.

type orderRequest struct {
	ReferenceID      string          `json:"reference_id"`
	Customer         customerRequest `json:"customer"`
	Items            []itemRequest   `json:"items"`
	QRCodes          []qrCodeRequest `json:"qr_codes,omitempty"`
	Charges          []chargeRequest `json:"charges,omitempty"`
	NotificationURLs []string        `json:"notification_urls"`
}

type customerRequest struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	TaxID  string         `json:"tax_id"`
	Phones []phoneRequest `json:"phones"`
}

type phoneRequest struct {
	Country string `json:"country"`
	Area    string `json:"area"`
	Number  string `json:"number"`
	Type    string `json:"type"`
}

type itemRequest struct {
	ReferenceID string `json:"reference_id"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	UnitAmount  int64  `json:"unit_amount"`
}

type qrCodeRequest struct {
	Amount         amount `json:"amount"`
	ExpirationDate string `json:"expiration_date"`
}

type chargeRequest struct {
	ReferenceID   string        `json:"reference_id"`
	Description   string        `json:"description"`
	Amount        amount        `json:"amount"`
	PaymentMethod paymentMethod `json:"payment_method"`
}

type amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency,omitempty"`
}

type paymentMethod struct {
	Type         string `json:"type"`
	Installments int    `json:"installments"`
	Capture      bool   `json:"capture"`
	Card         card   `json:"card"`
}

type card struct {
	Number       string     `json:"number"`
	ExpMonth     int        `json:"exp_month"`
	ExpYear      int        `json:"exp_year"`
	SecurityCode string     `json:"security_code"`
	Holder       cardHolder `json:"holder"`
	Store        bool       `json:"store"`
}

type cardHolder struct {
	Name string `json:"name"`
}

type orderResponse struct {
	ID          string           `json:"id"`
	ReferenceID string           `json:"reference_id"`
	CreatedAt   string           `json:"created_at"`
	Customer    customerResponse `json:"customer"`
	Items       []itemRequest    `json:"items"`
	QRCodes     []qrCodeResponse `json:"qr_codes"`
	Charges     []chargeResponse `json:"charges"`
}

type customerResponse struct {
	Name string `json:"name"`
}

type qrCodeResponse struct {
	Text           string `json:"text"`
	ExpirationDate string `json:"expiration_date"`
	Links          []link `json:"links"`
}

type link struct {
	Href string `json:"href"`
}

type chargeResponse struct {
	Status          string          `json:"status"`
	PaymentMethod   chargeMethod    `json:"payment_method"`
	PaymentResponse json.RawMessage `json:"payment_response"`
}

type chargeMethod struct {
	Type string `json:"type"`
}
