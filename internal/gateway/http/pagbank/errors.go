package pagbank

import (
	"encoding/json"
	"fmt"
)

// ProviderError carries a non-2xx provider reply. Handlers echo the status
// code and body back to the caller.
type ProviderError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("pagbank: unexpected status %d", e.StatusCode)
}
