package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoItems        = errors.New("order has no items")
	ErrCardIncomplete = errors.New("incomplete card data")
)

// DeclinedError is a business failure on a transport-level success: the
// provider answered 2xx but the charge was not paid.
type DeclinedError struct {
	Status  string
	Details json.RawMessage
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("payment declined with status %s", e.Status)
}
