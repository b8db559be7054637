package orders

import "errors"

var (
	ErrNotPaid        = errors.New("order is not paid")
	ErrInvalidStatus  = errors.New("invalid kitchen status")
	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already stored")
)
