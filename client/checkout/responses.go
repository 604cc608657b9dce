package checkout

// PaymentProcessed is the 201 response to a payment that settled
// synchronously.
type PaymentProcessed struct {
	Id              string                 `json:"id"`
	ActionId        string                 `json:"action_id"`
	Amount          Amount                 `json:"amount"`
	Currency        Currency               `json:"currency"`
	Approved        bool                   `json:"approved"`
	Status          PaymentStatus          `json:"status"`
	AuthCode        string                 `json:"auth_code,omitempty"`
	ResponseCode    string                 `json:"response_code"`
	ResponseSummary string                 `json:"response_summary,omitempty"`
	ThreeDs         *ThreeDsStatus         `json:"3ds,omitempty"`
	Risk            *RiskResults           `json:"risk,omitempty"`
	Source          *ProcessedSource       `json:"source,omitempty"`
	Customer        *CustomerInfo          `json:"customer,omitempty"`
	ProcessedOn     string                 `json:"processed_on"`
	Reference       string                 `json:"reference,omitempty"`
	Processing      *PaymentProcessingInfo `json:"processing,omitempty"`
	Eci             string                 `json:"eci,omitempty"`
	SchemeId        string                 `json:"scheme_id,omitempty"`
	Links           Links                  `json:"_links,omitempty"`
}

// PendingPayment is the 202 response to a payment that is processed
// asynchronously or needs a redirect (for example 3-D Secure). The redirect
// link, when present, is under LINK_REDIRECT.
type PendingPayment struct {
	Id        string         `json:"id"`
	Status    PaymentStatus  `json:"status"`
	Customer  *CustomerInfo  `json:"customer,omitempty"`
	Reference string         `json:"reference,omitempty"`
	ThreeDs   *ThreeDsStatus `json:"3ds,omitempty"`
	Links     Links          `json:"_links,omitempty"`
}

// CreatePaymentResponse is the outcome of CreatePayment. Exactly one of the
// two fields is set: Processed for an immediately settled payment (201),
// Pending for asynchronous or redirect-requiring follow-up (202). Both are
// success outcomes.
type CreatePaymentResponse struct {
	Processed *PaymentProcessed
	Pending   *PendingPayment
}

// PaymentDetails is the response to GET /payments/{id}.
type PaymentDetails struct {
	Id                string              `json:"id"`
	RequestedOn       string              `json:"requested_on"`
	Source            *ProcessedSource    `json:"source,omitempty"`
	Destination       *ProcessedSource    `json:"destination,omitempty"`
	Amount            Amount              `json:"amount"`
	Currency          Currency            `json:"currency"`
	PaymentType       PaymentType         `json:"payment_type"`
	Reference         string              `json:"reference,omitempty"`
	Description       string              `json:"description,omitempty"`
	Approved          bool                `json:"approved"`
	Status            PaymentStatus       `json:"status"`
	ThreeDs           *ThreeDsStatus      `json:"3ds,omitempty"`
	Risk              *RiskResults        `json:"risk,omitempty"`
	Customer          *CustomerInfo       `json:"customer,omitempty"`
	BillingDescriptor *BillingDescriptor  `json:"billing_descriptor,omitempty"`
	Shipping          *ShippingDescriptor `json:"shipping,omitempty"`
	PaymentIp         string              `json:"payment_ip,omitempty"`
	Recipient         *PaymentRecipient   `json:"recipient,omitempty"`
	Metadata          Metadata            `json:"metadata,omitempty"`
	Eci               string              `json:"eci,omitempty"`
	SchemeId          string              `json:"scheme_id,omitempty"`
	Actions           []ActionSummary     `json:"actions,omitempty"`
	Links             Links               `json:"_links,omitempty"`
}

// GetPaymentActionsResponse lists a payment's actions, latest first.
type GetPaymentActionsResponse []Action

// CapturePaymentResponse is the response to POST /payments/{id}/captures.
type CapturePaymentResponse struct {
	ActionId  string `json:"action_id"`
	Reference string `json:"reference,omitempty"`
	Links     Links  `json:"_links,omitempty"`
}

// RefundPaymentResponse is the response to POST /payments/{id}/refunds.
type RefundPaymentResponse struct {
	ActionId  string `json:"action_id"`
	Reference string `json:"reference,omitempty"`
	Links     Links  `json:"_links,omitempty"`
}

// VoidPaymentResponse is the response to POST /payments/{id}/voids.
type VoidPaymentResponse struct {
	ActionId  string `json:"action_id"`
	Reference string `json:"reference,omitempty"`
	Links     Links  `json:"_links,omitempty"`
}

// CreateCustomerResponse is the response to POST /customers.
type CreateCustomerResponse struct {
	Id string `json:"id"`
}

// GetCustomerDetailsResponse is the response to GET /customers/{id_or_email}.
type GetCustomerDetailsResponse struct {
	Id                  string       `json:"id"`
	Email               string       `json:"email"`
	DefaultInstrumentId string       `json:"default,omitempty"`
	Name                string       `json:"name,omitempty"`
	Phone               *PhoneNumber `json:"phone,omitempty"`
	Metadata            Metadata     `json:"metadata,omitempty"`
	Instruments         []Instrument `json:"instruments,omitempty"`
}
