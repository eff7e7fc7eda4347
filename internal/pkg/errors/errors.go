package errors

import (
	"encoding/json"
	"net/http"
)

// Kind is the closed set of failure classes the webhook pipeline can produce.
// Every error that reaches the handler boundary carries exactly one of these.
type Kind int

const (
	KindAuthentication Kind = iota // signature mismatch, never logged to the DB
	KindValidation                 // payload failed schema validation
	KindDownstream                 // fulfillment API rejected the order
	KindUnknown                    // anything else (network, DB, panic-adjacent)
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "AuthenticationError"
	case KindValidation:
		return "ValidationError"
	case KindDownstream:
		return "DownstreamError"
	default:
		return "UnknownError"
	}
}

func (k Kind) HTTPStatus() int {
	if k == KindAuthentication {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	// Fields is populated for KindValidation only: field path -> messages.
	Fields map[string][]string
	cause  error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Detail is what goes into the {"error": ...} response body: the field-error
// map for validation failures, the plain message for everything else.
func (e *Error) Detail() interface{} {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return e.Fields
	}
	return e.Message
}

func NewValidation(fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: "payload validation failed", Fields: fields}
}

func NewDownstream(message string) *Error {
	return &Error{Kind: KindDownstream, Message: message}
}

func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	if message == "" {
		message = err.Error()
	}
	return &Error{Kind: KindUnknown, Message: message, cause: err}
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError emits the {"error": <detail>} body shared by every failure exit.
func WriteError(w http.ResponseWriter, status int, detail interface{}) {
	WriteJSON(w, status, map[string]interface{}{"error": detail})
}
