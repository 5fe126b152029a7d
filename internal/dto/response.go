package dto

// APIResponse is the envelope wrapping every response body, success or failure.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(status int, data any, message string) APIResponse {
	return APIResponse{Status: status, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope. Data is always null.
func NewErrorResponse(status int, message string) APIResponse {
	return APIResponse{Status: status, Message: message, Data: nil}
}
