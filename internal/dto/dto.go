// Package dto holds the JSON wire types of the public API. Response keys are
// in Portuguese because the storefront consumes them verbatim.
package dto

import "encoding/json"

// --- request bodies ---

type Customer struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	TaxID *string `json:"tax_id,omitempty"`
}

type Item struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type CardData struct {
	Number       string `json:"number"`
	Holder       string `json:"holder"`
	ExpMonth     int    `json:"exp_month"`
	ExpYear      int    `json:"exp_year"`
	SecurityCode string `json:"security_code"`
}

type CheckoutRequest struct {
	ReferenceID     *string         `json:"reference_id,omitempty"`
	Customer        *Customer       `json:"customer,omitempty"`
	Items           []Item          `json:"items"`
	TotalAmount     *int64          `json:"total_amount,omitempty"`
	DeliveryFee     *int64          `json:"delivery_fee,omitempty"`
	DeliveryAddress json.RawMessage `json:"delivery_address,omitempty"`
	CardData        *CardData       `json:"card_data,omitempty"`
	PaymentType     *string         `json:"payment_type,omitempty"`
	Installments    *int            `json:"installments,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// WebhookNotification is the charge status callback sent by PagBank.
type WebhookNotification struct {
	ReferenceID string          `json:"reference_id"`
	Customer    *Customer       `json:"customer,omitempty"`
	Items       []Item          `json:"items,omitempty"`
	Charges     []WebhookCharge `json:"charges,omitempty"`
}

type WebhookCharge struct {
	Status        string                `json:"status"`
	PaymentMethod *WebhookPaymentMethod `json:"payment_method,omitempty"`
}

type WebhookPaymentMethod struct {
	Type string `json:"type"`
}

// --- response envelopes ---

type ErrorResponse struct {
	Erro       string `json:"erro"`
	Detalhes   any    `json:"detalhes,omitempty"`
	StatusCode *int   `json:"status_code,omitempty"`
}

type QRCode struct {
	QRCodeText     string `json:"qr_code_text"`
	QRCodeLink     string `json:"qr_code_link"`
	ExpirationDate string `json:"expiration_date"`
}

type PixOrderResponse struct {
	Sucesso     bool   `json:"sucesso"`
	OrderID     string `json:"order_id"`
	ReferenceID string `json:"reference_id"`
	QRCode      QRCode `json:"qr_code"`
	Status      string `json:"status"`
	Mensagem    string `json:"mensagem"`
}

type CardOrderResponse struct {
	Sucesso      bool   `json:"sucesso"`
	OrderID      string `json:"order_id"`
	ReferenceID  string `json:"reference_id"`
	Status       string `json:"status"`
	Installments int    `json:"installments"`
	Mensagem     string `json:"mensagem"`
	Dados        any    `json:"dados,omitempty"`
}

type CardDeclinedResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Erro     string `json:"erro"`
	Detalhes any    `json:"detalhes,omitempty"`
}

type PaymentStatusResponse struct {
	OrderID       string `json:"order_id"`
	ReferenceID   string `json:"reference_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	CreatedAt     string `json:"created_at"`
	Customer      string `json:"customer"`
	Total         int64  `json:"total"`
}

type WebhookAck struct {
	Status string `json:"status"`
}

// Order is the kitchen-facing view of a stored order. Timestamps are RFC 3339.
type Order struct {
	ID              string          `json:"id"`
	Customer        Customer        `json:"customer"`
	DeliveryAddress json.RawMessage `json:"delivery_address"`
	Items           []Item          `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	DeliveryFee     float64         `json:"delivery_fee"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
	PaidAt          string          `json:"paid_at"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

type OrderListResponse struct {
	Sucesso bool    `json:"sucesso"`
	Pedidos []Order `json:"pedidos"`
	Total   int     `json:"total"`
	Storage string  `json:"storage"`
}

type OrderUpdateResponse struct {
	Sucesso  bool   `json:"sucesso"`
	Pedido   Order  `json:"pedido"`
	Mensagem string `json:"mensagem"`
}

type Stats struct {
	PedidosHoje int     `json:"pedidos_hoje"`
	Pendentes   int     `json:"pendentes"`
	Preparando  int     `json:"preparando"`
	ReceitaHoje float64 `json:"receita_hoje"`
}

type StatsResponse struct {
	Sucesso bool  `json:"sucesso"`
	Stats   Stats `json:"stats"`
}

type ConfigResponse struct {
	Ambiente            string `json:"ambiente"`
	Moeda               string `json:"moeda"`
	PixExpiracaoMinutos int    `json:"pix_expiracao_minutos"`
	AceitaCartao        bool   `json:"aceita_cartao"`
	AceitaPix           bool   `json:"aceita_pix"`
	MaxParcelas         int    `json:"max_parcelas"`
	DatabaseStatus      string `json:"database_status"`
	StorageType         string `json:"storage_type"`
}

type APIInfoResponse struct {
	Status         string   `json:"status"`
	Ambiente       string   `json:"ambiente"`
	DatabaseStatus string   `json:"database_status"`
	StorageType    string   `json:"storage_type"`
	Endpoints      []string `json:"endpoints"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
