package checkout

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// NewIdempotencyKey returns a fresh key for CreatePaymentRequest. Reusing a
// key makes the gateway reject the replay with 429.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// CreatePayment requests a payment or payout via POST /payments.
//
// The gateway answers 201 when the payment was processed synchronously and
// 202 when processing continues asynchronously or the customer must be
// redirected; both are success outcomes, see CreatePaymentResponse.
func (c *Client) CreatePayment(request *CreatePaymentRequest) (*CreatePaymentResponse, error) {
	status, raw, err := c.roundTrip(http.MethodPost, "/payments", request.IdempotencyKey, request)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusCreated:
		var processed PaymentProcessed
		if err := json.Unmarshal([]byte(raw), &processed); err != nil {
			return nil, &DecodeError{Err: err}
		}
		return &CreatePaymentResponse{Processed: &processed}, nil
	case http.StatusAccepted:
		var pending PendingPayment
		if err := json.Unmarshal([]byte(raw), &pending); err != nil {
			return nil, &DecodeError{Err: err}
		}
		return &CreatePaymentResponse{Pending: &pending}, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusUnprocessableEntity:
		return nil, invalidData(status, raw)
	case http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	default:
		return nil, &UnknownStatusError{StatusCode: status, Body: raw}
	}
}

// GetPaymentDetails returns the details of the payment with the given
// identifier via GET /payments/{id}.
func (c *Client) GetPaymentDetails(request *GetPaymentDetailsRequest) (*PaymentDetails, error) {
	var details PaymentDetails
	err := c.get("/payments/"+request.PaymentId, &details)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// GetPaymentActions returns all actions associated with a payment, latest
// first, via GET /payments/{id}/actions.
func (c *Client) GetPaymentActions(request *GetPaymentActionsRequest) (GetPaymentActionsResponse, error) {
	var actions GetPaymentActionsResponse
	err := c.get(fmt.Sprintf("/payments/%s/actions", request.PaymentId), &actions)
	if err != nil {
		return nil, err
	}
	return actions, nil
}

// CapturePayment captures a payment via POST /payments/{id}/captures. Card
// captures are processed asynchronously by the gateway.
func (c *Client) CapturePayment(request *CapturePaymentRequest) (*CapturePaymentResponse, error) {
	var response CapturePaymentResponse
	err := c.post(fmt.Sprintf("/payments/%s/captures", request.PaymentId), &request.Body, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// RefundPayment refunds a payment via POST /payments/{id}/refunds.
func (c *Client) RefundPayment(request *RefundPaymentRequest) (*RefundPaymentResponse, error) {
	var response RefundPaymentResponse
	err := c.post(fmt.Sprintf("/payments/%s/refunds", request.PaymentId), &request.Body, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// VoidPayment voids an authorized payment via POST /payments/{id}/voids.
func (c *Client) VoidPayment(request *VoidPaymentRequest) (*VoidPaymentResponse, error) {
	var response VoidPaymentResponse
	err := c.post(fmt.Sprintf("/payments/%s/voids", request.PaymentId), &request.Body, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
