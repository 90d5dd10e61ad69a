package api

import "encoding/json"

// Response is the uniform envelope every endpoint returns. Callers branch on
// Success, never on the HTTP status alone.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Err(message string) Response {
	return Response{Success: false, Message: message}
}

// Envelope is the decode-side counterpart of Response: Data stays raw so the
// caller can unmarshal it into the expected type once Success is known.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
