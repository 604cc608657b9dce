package checkout

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const (
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	headerIdempotencyKey = "Cko-Idempotency-Key"

	contentTypeJson = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// roundTrip resolves the auth header, sends one request and returns the
// status code with the raw body text. Only transport level failures are
// errors here; status interpretation is left to classify so endpoints with
// special success codes can branch on the status themselves. GET and DELETE
// never carry a body.
func (c *Client) roundTrip(method, path, idempotencyKey string, body any) (int, string, error) {
	auth, err := c.auth.headerValue()
	if err != nil {
		return 0, "", err
	}
	slog.Debug("[CheckoutClient] sending request", "method", method, "path", path)
	switch method {
	case http.MethodGet:
		resp, err := c.api.GET(path).
			Header().Add(headerAuthorization, auth).
			Send()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		raw, err := resp.Body().AsString()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		return resp.Status().Code(), raw, nil
	case http.MethodDelete:
		resp, err := c.api.DELETE(path).
			Header().Add(headerAuthorization, auth).
			Send()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		raw, err := resp.Body().AsString()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		return resp.Status().Code(), raw, nil
	case http.MethodPost:
		req := c.api.POST(path).
			Header().Add(headerAuthorization, auth).
			Header().Add(headerContentType, contentTypeJson)
		if idempotencyKey != "" {
			req = req.Header().Add(headerIdempotencyKey, idempotencyKey)
		}
		resp, err := req.
			Body().AsString(string(mustMarshalJson(body))).
			Send()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		raw, err := resp.Body().AsString()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		return resp.Status().Code(), raw, nil
	case http.MethodPatch:
		resp, err := c.api.PATCH(path).
			Header().Add(headerAuthorization, auth).
			Header().Add(headerContentType, contentTypeJson).
			Body().AsString(string(mustMarshalJson(body))).
			Send()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		raw, err := resp.Body().AsString()
		if err != nil {
			return 0, "", &TransportError{Err: err}
		}
		return resp.Status().Code(), raw, nil
	default:
		panic(fmt.Sprintf("checkout: unsupported method %s", method))
	}
}

// get sends a GET request and classifies the result into out.
func (c *Client) get(path string, out any) error {
	status, raw, err := c.roundTrip(http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	return classify(status, raw, out)
}

// post sends a JSON body and classifies the result into out.
func (c *Client) post(path string, body, out any) error {
	status, raw, err := c.roundTrip(http.MethodPost, path, "", body)
	if err != nil {
		return err
	}
	return classify(status, raw, out)
}

// patch sends a JSON body; the gateway answers PATCH endpoints with no body.
func (c *Client) patch(path string, body any) error {
	status, raw, err := c.roundTrip(http.MethodPatch, path, "", body)
	if err != nil {
		return err
	}
	return classify(status, raw, nil)
}

func (c *Client) delete(path string) error {
	status, raw, err := c.roundTrip(http.MethodDelete, path, "", nil)
	if err != nil {
		return err
	}
	return classify(status, raw, nil)
}

// classify maps a status code and raw body onto the error taxonomy, decoding
// the body into out on generic 2xx success. 401, 422 and 429 are the
// statuses the gateway uses deliberately; everything else outside 2xx is
// surfaced with its raw body since the shape is unknown.
func classify(status int, raw string, out any) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusUnprocessableEntity:
		return invalidData(status, raw)
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	}
	if status < 200 || status > 299 {
		slog.Warn("[CheckoutClient] unexpected status", "status", status)
		return &UnknownStatusError{StatusCode: status, Body: raw}
	}
	if out == nil || status == http.StatusNoContent || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func invalidData(status int, raw string) error {
	var apiErr ApiError
	if err := json.Unmarshal([]byte(raw), &apiErr); err != nil {
		return &UnknownStatusError{StatusCode: status, Body: raw}
	}
	return &InvalidDataError{ApiError: apiErr}
}
