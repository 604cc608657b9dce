package checkout

// CreatePaymentRequest is the body of POST /payments. Specify Source to
// request a payment or Destination to pay out to a card; check Approved on
// the response to verify the outcome. Omit the amount or send 0 to perform a
// card verification.
type CreatePaymentRequest struct {
	Source              *PaymentSource        `json:"source,omitempty"`
	Destination         *PaymentDestination   `json:"destination,omitempty"`
	Amount              Amount                `json:"amount,omitempty"`
	Currency            Currency              `json:"currency"`
	PaymentType         PaymentType           `json:"payment_type,omitempty"`
	MerchantInitiated   bool                  `json:"merchant_initiated"`
	Reference           string                `json:"reference,omitempty"`
	Description         string                `json:"description,omitempty"`
	Capture             *bool                 `json:"capture,omitempty"`
	CaptureOn           string                `json:"capture_on,omitempty"`
	Customer            *CustomerDescriptor   `json:"customer,omitempty"`
	BillingDescriptor   *BillingDescriptor    `json:"billing_descriptor,omitempty"`
	Shipping            *ShippingDescriptor   `json:"shipping,omitempty"`
	ThreeDs             *ThreeDsRequest       `json:"3ds,omitempty"`
	PreviousPaymentId   string                `json:"previous_payment_id,omitempty"`
	Risk                *RiskRequest          `json:"risk,omitempty"`
	SuccessUrl          string                `json:"success_url,omitempty"`
	FailureUrl          string                `json:"failure_url,omitempty"`
	PaymentIp           string                `json:"payment_ip,omitempty"`
	Recipient           *PaymentRecipient     `json:"recipient,omitempty"`
	Processing          *ProcessingDescriptor `json:"processing,omitempty"`
	ProcessingChannelId string                `json:"processing_channel_id,omitempty"`
	Metadata            Metadata              `json:"metadata,omitempty"`

	// IdempotencyKey is sent as the Cko-Idempotency-Key header instead of the
	// body. The gateway answers a replayed key with 429, surfaced as
	// ErrTooManyRequests. See NewIdempotencyKey.
	IdempotencyKey string `json:"-"`
}

// GetPaymentDetailsRequest identifies the payment for GET /payments/{id}.
type GetPaymentDetailsRequest struct {
	PaymentId string
}

// GetPaymentActionsRequest identifies the payment for
// GET /payments/{id}/actions.
type GetPaymentActionsRequest struct {
	PaymentId string
}

// CapturePaymentBody is the body of POST /payments/{id}/captures. A zero
// Amount captures the full payment amount.
type CapturePaymentBody struct {
	Amount    Amount   `json:"amount,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// CapturePaymentRequest captures a payment, fully or partially.
type CapturePaymentRequest struct {
	PaymentId string
	Body      CapturePaymentBody
}

// RefundPaymentBody is the body of POST /payments/{id}/refunds. A zero
// Amount refunds the full payment amount.
type RefundPaymentBody struct {
	Amount    Amount   `json:"amount,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// RefundPaymentRequest refunds a captured payment.
type RefundPaymentRequest struct {
	PaymentId string
	Body      RefundPaymentBody
}

// VoidPaymentBody is the body of POST /payments/{id}/voids.
type VoidPaymentBody struct {
	Reference string   `json:"reference,omitempty"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// VoidPaymentRequest voids an authorized, uncaptured payment.
type VoidPaymentRequest struct {
	PaymentId string
	Body      VoidPaymentBody
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Email    string       `json:"email"`
	Name     string       `json:"name,omitempty"`
	Phone    *PhoneNumber `json:"phone,omitempty"`
	Metadata Metadata     `json:"metadata,omitempty"`
}

// UpdateCustomerRequest is the body of PATCH /customers/{id}. Only the set
// fields are updated; the gateway answers with no body.
type UpdateCustomerRequest struct {
	CustomerId string `json:"-"`

	Email               string       `json:"email,omitempty"`
	Name                string       `json:"name,omitempty"`
	Phone               *PhoneNumber `json:"phone,omitempty"`
	DefaultInstrumentId string       `json:"default,omitempty"`
	Metadata            Metadata     `json:"metadata,omitempty"`
}
