package webhook_pagbank_post

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"pizzaria/internal/dto"
	"pizzaria/internal/entities"
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

// ServeHTTP acknowledges every parseable notification with 200 even when
// processing fails, so the provider does not retry a charge we already
// logged. Only an unreadable body is reported as an error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var notificationDTO dto.WebhookNotification
	err := json.NewDecoder(r.Body).Decode(&notificationDTO)
	if err != nil {
		h.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Erro: err.Error(),
		})
		return
	}

	// Notifications without charges carry nothing actionable.
	if len(notificationDTO.Charges) > 0 {
		err = h.service.ProcessNotification(r.Context(), toNotification(notificationDTO))
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("reference_id", notificationDTO.ReferenceID),
			).Error("process webhook notification")
		}
	}

	h.writeJSON(w, http.StatusOK, dto.WebhookAck{
		Status: "webhook processado",
	})
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

func toNotification(notificationDTO dto.WebhookNotification) entities.Notification {
	items := make([]entities.OrderItem, 0, len(notificationDTO.Items))
	for _, item := range notificationDTO.Items {
		items = append(items, entities.OrderItem{
			Name:       item.Name,
			Quantity:   int64(item.Quantity),
			UnitAmount: item.UnitAmount,
		})
	}

	var customer entities.Customer
	if notificationDTO.Customer != nil {
		customer = entities.Customer{
			Name:  pointer.Get(notificationDTO.Customer.Name),
			Email: pointer.Get(notificationDTO.Customer.Email),
			Phone: pointer.Get(notificationDTO.Customer.Phone),
			TaxID: pointer.Get(notificationDTO.Customer.TaxID),
		}
	}

	charge := notificationDTO.Charges[0]
	paymentMethod := "UNKNOWN"
	if charge.PaymentMethod != nil && charge.PaymentMethod.Type != "" {
		paymentMethod = charge.PaymentMethod.Type
	}

	return entities.Notification{
		ReferenceID:   notificationDTO.ReferenceID,
		Customer:      customer,
		Items:         items,
		ChargeStatus:  charge.Status,
		PaymentMethod: paymentMethod,
	}
}
