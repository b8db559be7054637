package orders

import "pizzaria/internal/entities"

func isValidKitchenStatus(status entities.KitchenStatus) bool {
	switch status {
	case entities.StatusPending,
		entities.StatusPreparing,
		entities.StatusCompleted,
		entities.StatusDelivered:
		return true
	default:
		return false
	}
}
