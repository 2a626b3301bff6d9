package utils

// ErrorResponse is a struct for error response. Error carries the backend
// reason string; it is surfaced to the caller, not swallowed.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
