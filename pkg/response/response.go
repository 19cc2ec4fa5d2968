package response

// Body is the standard API response envelope
type Body struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// Success returns a standard success body wrapping the data
func Success(message string, data interface{}) Body {
	return Body{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// SuccessCount is Success with an explicit item count for list endpoints
func SuccessCount(message string, data interface{}, count int) Body {
	return Body{
		Status:  true,
		Message: message,
		Data:    data,
		Count:   &count,
	}
}

// Error returns a standard error body wrapping the message
func Error(message string) Body {
	return Body{
		Status:  false,
		Message: message,
	}
}
