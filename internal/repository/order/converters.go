package order

import (
	"encoding/json"
	"fmt"

	"pizzaria/internal/entities"
)

func FromDomain(order *entities.Order) (*OrderDB, error) {
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return nil, fmt.Errorf("marshal customer: %w", err)
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	deliveryAddress := []byte(order.DeliveryAddress)
	if len(deliveryAddress) == 0 {
		deliveryAddress = []byte("{}")
	}

	return &OrderDB{
		ID:              order.ID,
		Customer:        customer,
		DeliveryAddress: deliveryAddress,
		Items:           items,
		Subtotal:        order.Subtotal,
		DeliveryFee:     order.DeliveryFee,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
		PaidAt:          order.PaidAt,
		UpdatedAt:       order.UpdatedAt,
	}, nil
}

func ToDomain(orderDB *OrderDB) (*entities.Order, error) {
	if orderDB == nil {
		return nil, nil
	}

	var customer entities.Customer
	if len(orderDB.Customer) > 0 {
		if err := json.Unmarshal(orderDB.Customer, &customer); err != nil {
			return nil, fmt.Errorf("unmarshal customer: %w", err)
		}
	}

	var items []entities.OrderItem
	if len(orderDB.Items) > 0 {
		if err := json.Unmarshal(orderDB.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}

	return &entities.Order{
		ID:              orderDB.ID,
		Customer:        customer,
		DeliveryAddress: orderDB.DeliveryAddress,
		Items:           items,
		Subtotal:        orderDB.Subtotal,
		DeliveryFee:     orderDB.DeliveryFee,
		Total:           orderDB.Total,
		PaymentMethod:   orderDB.PaymentMethod,
		PaymentStatus:   orderDB.PaymentStatus,
		Status:          entities.KitchenStatus(orderDB.Status),
		CreatedAt:       orderDB.CreatedAt,
		PaidAt:          orderDB.PaidAt,
		UpdatedAt:       orderDB.UpdatedAt,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}
