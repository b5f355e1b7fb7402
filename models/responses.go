package models

// AppErrorBody is the wire representation of a structured [AppError].
// The key set is stable regardless of how the error was constructed.
type AppErrorBody struct {
	Message    string         `json:"message"`
	StatusCode int            `json:"status_code"`
	Context    map[string]any `json:"context"`
	TraceID    string         `json:"trace_id"`
}

// UnexpectedErrorBody is the wire representation of an unexpected failure.
// The message is always the fixed generic string; only the failure's Go type
// name is exposed as a diagnostic hint. The original error text is logged
// server-side and never transmitted to the client.
type UnexpectedErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	TraceID string `json:"trace_id"`
}

// AppErrorResponse is the envelope for structured error responses.
type AppErrorResponse struct {
	Error AppErrorBody `json:"error"`
}

// UnexpectedErrorResponse is the envelope for unexpected failure responses.
type UnexpectedErrorResponse struct {
	Error UnexpectedErrorBody `json:"error"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
