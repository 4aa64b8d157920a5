// ABOUTME: Shared helpers for decoding backend responses and classifying HTTP failures
// ABOUTME: Keeps the wire-to-domain mapping in one place instead of inlined per service

package rest

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
)

// errorPayload matches the backend's structured error bodies, which use
// either "message" or "error" as the key.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// DecodeJSON reads and decodes a response body into v, closing the body.
func DecodeJSON(resp interfaces.Response, v interface{}) error {
	defer resp.Body().Close()

	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return apperrors.WrapError(err, "failed to read response body")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.WrapError(err, "failed to decode response body")
	}

	return nil
}

// FailureFromResponse converts a non-success response into a classified
// error, consuming the body. api names the remote surface for error text.
func FailureFromResponse(api string, resp interfaces.Response) error {
	defer resp.Body().Close()

	var payload errorPayload
	message := ""
	if data, err := io.ReadAll(resp.Body()); err == nil {
		if json.Unmarshal(data, &payload) == nil {
			message = payload.Message
			if message == "" {
				message = payload.Error
			}
		}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &apperrors.AuthorizationError{Message: message}
	case http.StatusConflict:
		return &apperrors.ConflictError{Resource: api, Message: message}
	default:
		return &apperrors.ServerError{
			StatusCode: resp.StatusCode(),
			Message:    message,
			API:        api,
		}
	}
}

// Success reports whether the status code is in the 2xx range.
func Success(resp interfaces.Response) bool {
	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}
