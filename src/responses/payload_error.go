package responses

import "fmt"

// PayloadError is an error reported by the API inside a successful HTTP response.
type PayloadError struct {
	Message string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("api error: %s", e.Message)
}
