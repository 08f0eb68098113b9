package commons

// Response is the envelope every service operation returns. The presentation
// layer renders Message and Errors; it never has to interpret raw error
// values.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
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

// Detail returns the first detailed error string, or the message when the
// service attached no details.
func (r Response[T]) Detail() string {
	if len(r.Errors) > 0 {
		return r.Errors[0]
	}
	return r.Message
}
