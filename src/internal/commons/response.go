package commons

// Response is the JSON envelope every API endpoint answers with. Retryable is
// set only on failures the client may repeat unchanged.
type Response[T any] struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Data      *T       `json:"data,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

func RetryableErrorResponse[T any](message string, errors ...string) Response[T] {
	response := ErrorResponse[T](message, errors...)
	response.Retryable = true
	return response
}
