package criar_pedido_cartao_post

import (
	"encoding/json"
	"errors"
	"fmt"
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

	request, details := toCheckout(checkoutDTO)

	payment, err := h.service.CreateCard(r.Context(), request, details)
	if err != nil {
		var (
			declinedErr *checkout.DeclinedError
			providerErr *pagbank.ProviderError
		)
		switch {
		case errors.Is(err, checkout.ErrCardIncomplete):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Erro: "Dados do cartão incompletos",
			})
		case errors.Is(err, checkout.ErrNoItems):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Erro: "Dados do pedido inválidos",
			})
		case errors.As(err, &declinedErr):
			h.writeJSON(w, http.StatusBadRequest, dto.CardDeclinedResponse{
				Sucesso:  false,
				Erro:     fmt.Sprintf("Pagamento não autorizado. Status: %s", declinedErr.Status),
				Detalhes: declinedDetails(declinedErr),
			})
		case errors.As(err, &providerErr):
			h.writeJSON(w, providerErr.StatusCode, dto.ErrorResponse{
				Erro:       "Erro ao processar pagamento com cartão",
				Detalhes:   providerDetails(providerErr),
				StatusCode: pointer.ToInt(providerErr.StatusCode),
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create card order")
			h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
				Erro: "Erro interno",
			})
		}
		return
	}

	response := dto.CardOrderResponse{
		Sucesso:      true,
		OrderID:      payment.OrderID,
		ReferenceID:  payment.ReferenceID,
		Status:       payment.Status,
		Installments: details.Installments,
		Mensagem:     fmt.Sprintf("Pagamento aprovado no %s!", details.Type),
		Dados:        payment.Raw,
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

func toCheckout(checkoutDTO dto.CheckoutRequest) (entities.CheckoutRequest, entities.CardDetails) {
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

	request := entities.CheckoutRequest{
		ReferenceID:     pointer.Get(checkoutDTO.ReferenceID),
		Customer:        customer,
		DeliveryAddress: checkoutDTO.DeliveryAddress,
		Items:           items,
		TotalAmount:     pointer.Get(checkoutDTO.TotalAmount),
		DeliveryFee:     pointer.Get(checkoutDTO.DeliveryFee),
	}

	details := entities.CardDetails{
		Type:         pointer.Get(checkoutDTO.PaymentType),
		Installments: pointer.Get(checkoutDTO.Installments),
	}
	if checkoutDTO.CardData != nil {
		details.Number = checkoutDTO.CardData.Number
		details.Holder = checkoutDTO.CardData.Holder
		details.ExpMonth = checkoutDTO.CardData.ExpMonth
		details.ExpYear = checkoutDTO.CardData.ExpYear
		details.SecurityCode = checkoutDTO.CardData.SecurityCode
	}
	if details.Type == "" {
		details.Type = "credit"
	}
	if details.Installments == 0 {
		details.Installments = 1
	}

	return request, details
}

func declinedDetails(declinedErr *checkout.DeclinedError) any {
	if len(declinedErr.Details) == 0 {
		return map[string]any{}
	}
	return declinedErr.Details
}

func providerDetails(providerErr *pagbank.ProviderError) any {
	if len(providerErr.Body) == 0 {
		return map[string]any{}
	}
	return providerErr.Body
}
