package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// NetworkErrorMessage is reported when the backend could not be reached at all.
const NetworkErrorMessage = "Unable to reach the server. Please check your connection."

// FieldError is one validation failure reported by the backend.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the single error type returned for every failed backend call.
// Status is 0 when the request never produced an HTTP response.
type Error struct {
	Status  int
	Message string
	Errors  []FieldError
	// Details carries the raw body when the backend did not answer with JSON.
	Details string

	cause error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s (%v)", e.Message, e.cause)
		}
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap exposes the transport error behind a status-0 failure.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// StatusOf returns the HTTP status carried by err, or -1 if err is not an *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}

func defaultMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}

// errorBody is the subset of a backend error payload the client understands.
type errorBody struct {
	Message string      `json:"message"`
	Errors  fieldErrors `json:"errors"`
}

// newError builds an *Error from a non-2xx response. payload is the parsed
// (or text-wrapped) body.
func newError(status int, payload []byte, details string) *Error {
	apiErr := &Error{Status: status, Details: details}

	var body errorBody
	if len(payload) > 0 && json.Unmarshal(payload, &body) == nil {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = defaultMessage(status)
	}
	return apiErr
}

// fieldErrors accepts the shapes validation errors arrive in: a list of
// objects, a list of strings, or an object keyed by field.
type fieldErrors []FieldError

func (f *fieldErrors) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		out := make([]FieldError, 0, len(items))
		for _, item := range items {
			var s string
			if json.Unmarshal(item, &s) == nil {
				out = append(out, FieldError{Message: s})
				continue
			}
			var obj struct {
				Field   string `json:"field"`
				Path    string `json:"path"`
				Param   string `json:"param"`
				Message string `json:"message"`
				Msg     string `json:"msg"`
			}
			if err := json.Unmarshal(item, &obj); err != nil {
				continue
			}
			fe := FieldError{Field: firstNonEmpty(obj.Field, obj.Path, obj.Param), Message: firstNonEmpty(obj.Message, obj.Msg)}
			out = append(out, fe)
		}
		*f = out
		return nil
	}

	var byField map[string]json.RawMessage
	if err := json.Unmarshal(data, &byField); err != nil {
		// Unknown shape; keep the message and drop the details.
		*f = nil
		return nil
	}

	keys := make([]string, 0, len(byField))
	for k := range byField {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]FieldError, 0, len(keys))
	for _, k := range keys {
		var s string
		if json.Unmarshal(byField[k], &s) == nil {
			out = append(out, FieldError{Field: k, Message: s})
			continue
		}
		var list []string
		if json.Unmarshal(byField[k], &list) == nil {
			for _, msg := range list {
				out = append(out, FieldError{Field: k, Message: msg})
			}
		}
	}
	*f = out
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
