package criar_pedido_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"pizzaria/internal/dto"
	"pizzaria/internal/entities"
	"pizzaria/internal/gateway/http/pagbank"
	"pizzaria/internal/service/checkout"
	"pizzaria/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Erro: "Dados do pedido inválidos",
		})
		return
	}

	payment, err := h.service.CreatePix(r.Context(), toCheckoutRequest(checkoutDTO))
	if err != nil {
		var providerErr *pagbank.ProviderError
		switch {
		case errors.Is(err, checkout.ErrNoItems):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Erro: "Dados do pedido inválidos",
			})
		case errors.As(err, &providerErr):
			h.writeJSON(w, providerErr.StatusCode, dto.ErrorResponse{
				Erro:       "Erro ao criar pedido no PagBank",
				Detalhes:   providerDetails(providerErr),
				StatusCode: pointer.ToInt(providerErr.StatusCode),
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create pix order")
			h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
				Erro: "Erro interno",
			})
		}
		return
	}

	response := dto.PixOrderResponse{
		Sucesso:     true,
		OrderID:     payment.OrderID,
		ReferenceID: payment.ReferenceID,
		QRCode: dto.QRCode{
			QRCodeText:     payment.QRCodeText,
			QRCodeLink:     payment.QRCodeLink,
			ExpirationDate: payment.ExpirationDate,
		},
		Status:   "WAITING",
		Mensagem: "Pedido criado com sucesso! Aguardando pagamento.",
	}

	h.writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toCheckoutRequest(checkoutDTO dto.CheckoutRequest) entities.CheckoutRequest {
	items := make([]entities.OrderItem, 0, len(checkoutDTO.Items))
	for _, item := range checkoutDTO.Items {
		items = append(items, entities.OrderItem{
			Name:       item.Name,
			Quantity:   int64(item.Quantity),
			UnitAmount: item.UnitAmount,
		})
	}

	var customer entities.Customer
	if checkoutDTO.Customer != nil {
		customer = entities.Customer{
			Name:  pointer.Get(checkoutDTO.Customer.Name),
			Email: pointer.Get(checkoutDTO.Customer.Email),
			Phone: pointer.Get(checkoutDTO.Customer.Phone),
			TaxID: pointer.Get(checkoutDTO.Customer.TaxID),
		}
	}

	return entities.CheckoutRequest{
		ReferenceID:     pointer.Get(checkoutDTO.ReferenceID),
		Customer:        customer,
		DeliveryAddress: checkoutDTO.DeliveryAddress,
		Items:           items,
		TotalAmount:     pointer.Get(checkoutDTO.TotalAmount),
		DeliveryFee:     pointer.Get(checkoutDTO.DeliveryFee),
	}
}

func providerDetails(providerErr *pagbank.ProviderError) any {
	if len(providerErr.Body) == 0 {
		return "Sem detalhes"
	}
	return providerErr.Body
}
