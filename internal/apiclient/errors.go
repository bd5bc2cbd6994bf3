package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RemoteAPIError is a transport failure (StatusCode 0) or a non-2xx response.
// Message is what the user should see.
type RemoteAPIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteAPIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: status=%d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// newStatusError prefers the API's {"message": "..."} body over the status text.
func newStatusError(op string, status int, body []byte) *RemoteAPIError {
	var payload struct {
		Message string `json:"message"`
	}

	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}

	return &RemoteAPIError{Op: op, StatusCode: status, Message: msg}
}
