package httpdto

// Response is the {success, message} envelope. Message is omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}

// StatusResponse is used by /ping and /health.
type StatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}
