package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// ApiError is the structured error body reported by the gateway.
type ApiError struct {
	RequestId  string   `json:"request_id"`
	ErrorType  string   `json:"error_type"`
	ErrorCodes []string `json:"error_codes"`
}

var (
	// ErrUnauthorized means the gateway rejected the credentials or the
	// bearer token, either at the token endpoint or at the resource itself.
	ErrUnauthorized = errors.New("checkout: unauthorized")

	// ErrTooManyRequests maps the gateway's 429 response. The gateway uses
	// this status both for true rate limiting and for duplicate requests
	// detected through an idempotency key; the two cases are not
	// distinguishable from the response.
	ErrTooManyRequests = errors.New("checkout: too many requests or duplicate request")

	// ErrAmountRange means an amount was negative or too large for the
	// minor-unit wire encoding.
	ErrAmountRange = errors.New("checkout: amount out of range")

	// ErrAmountPrecision means an amount had a fractional remainder after
	// scaling to the currency's minor unit.
	ErrAmountPrecision = errors.New("checkout: amount precision exceeds currency minor unit")
)

// InvalidDataError is the gateway's 422 rejection of the request payload,
// carrying the structured error body verbatim.
type InvalidDataError struct {
	ApiError
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("checkout: invalid data (%s, request %s): %s",
		e.ErrorType, e.RequestId, strings.Join(e.ErrorCodes, ", "))
}

// UnknownStatusError is returned for any response status the client does not
// map explicitly. The raw body text is preserved since its shape is unknown.
type UnknownStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("checkout: unexpected status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps a network level failure: connection errors, timeouts
// and cancelled requests all end up here, uninterpreted.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "checkout: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means a success response body did not match the expected
// schema. Unlike InvalidDataError this indicates a client/schema mismatch,
// not a server-side rejection of the input.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "checkout: decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
