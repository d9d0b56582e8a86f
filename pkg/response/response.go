package response

// Response is the JSON envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
}

// ErrorData carries a stable machine-readable code plus a human message
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success builds a successful envelope around data
func Success(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Error builds a failed envelope with the given code and message
func Error(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorData{
			Code:    code,
			Message: message,
		},
	}
}

// BadRequest builds a generic malformed-request envelope
func BadRequest(message string) Response {
	return Error("BAD_REQUEST", message)
}

// Unauthorized builds an unauthenticated envelope
func Unauthorized(message string) Response {
	return Error("UNAUTHENTICATED", message)
}

// Forbidden builds an authorization-failure envelope
func Forbidden(message string) Response {
	return Error("FORBIDDEN", message)
}

// NotFound builds a missing-resource envelope
func NotFound(message string) Response {
	return Error("NOT_FOUND", message)
}

// InternalError builds an internal failure envelope
func InternalError(details string) Response {
	return Response{
		Success: false,
		Error: &ErrorData{
			Code:    "INTERNAL_ERROR",
			Message: "Internal Server Error",
			Details: details,
		},
	}
}

// StorageError builds a transient storage-failure envelope. Distinct from
// domain error kinds so callers know a retry may succeed.
func StorageError() Response {
	return Error("STORAGE_ERROR", "Storage temporarily unavailable, please retry")
}
