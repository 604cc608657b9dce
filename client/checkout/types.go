package checkout

// Payment types
type PaymentType string

const (
	PAYMENT_TYPE_REGULAR   PaymentType = "Regular"
	PAYMENT_TYPE_RECURRING PaymentType = "Recurring"
	PAYMENT_TYPE_MOTO      PaymentType = "MOTO"
)

// Payment statuses
type PaymentStatus string

const (
	PAYMENT_STATUS_AUTHORIZED         PaymentStatus = "Authorized"
	PAYMENT_STATUS_PENDING            PaymentStatus = "Pending"
	PAYMENT_STATUS_CARD_VERIFIED      PaymentStatus = "Card Verified"
	PAYMENT_STATUS_VOIDED             PaymentStatus = "Voided"
	PAYMENT_STATUS_PARTIALLY_CAPTURED PaymentStatus = "Partially Captured"
	PAYMENT_STATUS_CAPTURED           PaymentStatus = "Captured"
	PAYMENT_STATUS_PARTIALLY_REFUNDED PaymentStatus = "Partially Refunded"
	PAYMENT_STATUS_REFUNDED           PaymentStatus = "Refunded"
	PAYMENT_STATUS_DECLINED           PaymentStatus = "Declined"
	PAYMENT_STATUS_CANCELLED          PaymentStatus = "Cancelled"
	PAYMENT_STATUS_PAID               PaymentStatus = "Paid"
	PAYMENT_STATUS_EXPIRED            PaymentStatus = "Expired"
)

// Action types
type ActionType string

const (
	ACTION_TYPE_AUTHORIZATION     ActionType = "Authorization"
	ACTION_TYPE_CARD_VERIFICATION ActionType = "Card Verification"
	ACTION_TYPE_VOID              ActionType = "Void"
	ACTION_TYPE_CAPTURE           ActionType = "Capture"
	ACTION_TYPE_REFUND            ActionType = "Refund"
	ACTION_TYPE_PAYOUT            ActionType = "Payout"
)

// Card types
type CardType string

const (
	CARD_TYPE_CREDIT         CardType = "CREDIT"
	CARD_TYPE_DEBIT          CardType = "DEBIT"
	CARD_TYPE_PREPAID        CardType = "PREPAID"
	CARD_TYPE_CHARGE         CardType = "CHARGE"
	CARD_TYPE_DEFERRED_DEBIT CardType = "DEFERRED DEBIT"
)

// Card categories
type CardCategory string

const (
	CARD_CATEGORY_CONSUMER   CardCategory = "CONSUMER"
	CARD_CATEGORY_COMMERCIAL CardCategory = "COMMERCIAL"
)

// SCA exemption reasons
type ScaExemption string

const (
	SCA_EXEMPTION_LOW_VALUE                ScaExemption = "low_value"
	SCA_EXEMPTION_SECURE_CORPORATE_PAYMENT ScaExemption = "secure_corporate_payment"
	SCA_EXEMPTION_TRUSTED_LISTING          ScaExemption = "trusted_listing"
)

// 3-D Secure enrollment statuses
type ThreeDsEnrollmentStatus string

const (
	THREE_DS_ENROLLED     ThreeDsEnrollmentStatus = "Y"
	THREE_DS_NOT_ENROLLED ThreeDsEnrollmentStatus = "N"
	THREE_DS_UNKNOWN      ThreeDsEnrollmentStatus = "U"
)

// 3-D Secure cardholder authentication results
type ThreeDsAuthenticationStatus string

const (
	THREE_DS_AUTHENTICATED     ThreeDsAuthenticationStatus = "Y"
	THREE_DS_NOT_AUTHENTICATED ThreeDsAuthenticationStatus = "N"
	THREE_DS_ATTEMPTED         ThreeDsAuthenticationStatus = "A"
	THREE_DS_UNABLE            ThreeDsAuthenticationStatus = "U"
)

// Metadata is a set of free-form key-value pairs attached to payments,
// customers and actions. Fields udf1 to udf5 are reserved for reporting.
type Metadata map[string]string

// Address is a physical address.
type Address struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
}

// PhoneNumber is an international phone number.
type PhoneNumber struct {
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
}

// PaymentSource is the source of a payment. Type is always "card" for full
// card details; use NewCardSource to build one.
type PaymentSource struct {
	Type           string       `json:"type"`
	Number         string       `json:"number"`
	ExpiryMonth    int          `json:"expiry_month"`
	ExpiryYear     int          `json:"expiry_year"`
	Name           string       `json:"name,omitempty"`
	Cvv            string       `json:"cvv,omitempty"`
	Stored         *bool        `json:"stored,omitempty"`
	BillingAddress *Address     `json:"billing_address,omitempty"`
	Phone          *PhoneNumber `json:"phone,omitempty"`
}

// NewCardSource builds a card payment source from the required card fields.
func NewCardSource(number string, expiryMonth, expiryYear int) *PaymentSource {
	return &PaymentSource{
		Type:        "card",
		Number:      number,
		ExpiryMonth: expiryMonth,
		ExpiryYear:  expiryYear,
	}
}

// PaymentDestination is the destination of a payout to a card.
type PaymentDestination struct {
	Type           string       `json:"type"`
	Number         string       `json:"number"`
	ExpiryMonth    string       `json:"expiry_month"`
	ExpiryYear     string       `json:"expiry_year"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Name           string       `json:"name,omitempty"`
	BillingAddress *Address     `json:"billing_address,omitempty"`
	Phone          *PhoneNumber `json:"phone,omitempty"`
}

// CustomerDescriptor identifies the customer on a payment request. Providing
// an email without an id creates a new customer unless one with the same
// email is already stored.
type CustomerDescriptor struct {
	Id    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// BillingDescriptor is the dynamic description shown on the account owner's
// statement.
type BillingDescriptor struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// ShippingDescriptor holds the shipping details of a payment.
type ShippingDescriptor struct {
	Address *Address     `json:"address,omitempty"`
	Phone   *PhoneNumber `json:"phone,omitempty"`
}

// ThreeDsRequest configures 3-D Secure processing for a payment.
type ThreeDsRequest struct {
	Enabled    *bool        `json:"enabled,omitempty"`
	AttemptN3d *bool        `json:"attempt_n3d,omitempty"`
	Sci        string       `json:"sci,omitempty"`
	Cryptogram string       `json:"cryptogram,omitempty"`
	Xid        string       `json:"xid,omitempty"`
	Version    string       `json:"version,omitempty"`
	Exemption  ScaExemption `json:"exemption,omitempty"`
}

// ThreeDsStatus reports how 3-D Secure processing went.
type ThreeDsStatus struct {
	Downgraded             bool                        `json:"downgraded"`
	Enrolled               ThreeDsEnrollmentStatus     `json:"enrolled"`
	SignatureValid         string                      `json:"signature_valid,omitempty"`
	AuthenticationResponse ThreeDsAuthenticationStatus `json:"authentication_response,omitempty"`
	Cryptogram             string                      `json:"cryptogram,omitempty"`
	Xid                    string                      `json:"xid,omitempty"`
	Version                string                      `json:"version,omitempty"`
	Exemption              ScaExemption                `json:"exemption,omitempty"`
}

// RiskRequest toggles the risk assessment performed during processing.
type RiskRequest struct {
	Enabled bool `json:"enabled"`
}

// RiskResults is the outcome of the risk assessment.
type RiskResults struct {
	Flagged bool `json:"flagged"`
}

// PaymentRecipient describes the recipient of the payment's funds, required
// for account funding transactions and some UK financial institution
// transactions.
type PaymentRecipient struct {
	Dob           string `json:"dob,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Zip           string `json:"zip,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
}

// ProcessingDescriptor overrides data sent during card processing.
type ProcessingDescriptor struct {
	// Aft flags the payment as an account funding transaction.
	Aft bool `json:"aft"`
}

// CustomerInfo identifies the customer attached to a payment.
type CustomerInfo struct {
	Id    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ProcessedSource describes the card behind a processed payment.
type ProcessedSource struct {
	Type                    string       `json:"type"`
	Id                      string       `json:"id,omitempty"`
	BillingAddress          *Address     `json:"billing_address,omitempty"`
	Phone                   *PhoneNumber `json:"phone,omitempty"`
	ExpiryMonth             int          `json:"expiry_month"`
	ExpiryYear              int          `json:"expiry_year"`
	Name                    string       `json:"name,omitempty"`
	Scheme                  string       `json:"scheme,omitempty"`
	Last4                   string       `json:"last4"`
	Fingerprint             string       `json:"fingerprint"`
	Bin                     string       `json:"bin"`
	CardType                CardType     `json:"card_type,omitempty"`
	CardCategory            CardCategory `json:"card_category,omitempty"`
	Issuer                  string       `json:"issuer,omitempty"`
	IssuerCountry           string       `json:"issuer_country,omitempty"`
	ProductId               string       `json:"product_id,omitempty"`
	ProductType             string       `json:"product_type,omitempty"`
	CvvResult               string       `json:"cvv_result,omitempty"`
	Payouts                 *bool        `json:"payouts,omitempty"`
	FastFunds               *bool        `json:"fast_funds,omitempty"`
	PaymentAccountReference string       `json:"payment_account_reference,omitempty"`
}

// PaymentProcessingInfo is returned information related to the processing of
// a payment.
type PaymentProcessingInfo struct {
	RetrievalReferenceNumber string `json:"retrieval_reference_number,omitempty"`
	AcquirerTransactionId    string `json:"acquirer_transaction_id,omitempty"`
}

// ActionProcessingInfo is returned information related to the processing of
// an action.
type ActionProcessingInfo struct {
	RetrievalReferenceNumber string `json:"retrieval_reference_number,omitempty"`
	AcquirerReferenceNumber  string `json:"acquirer_reference_number,omitempty"`
	AcquirerTransactionId    string `json:"acquirer_transaction_id,omitempty"`
}

// Action is a discrete operation applied against a payment: authorization,
// capture, refund, void, each independently identified.
type Action struct {
	Id              string                `json:"id"`
	Type            ActionType            `json:"type"`
	ProcessedOn     string                `json:"processed_on"`
	Amount          Amount                `json:"amount"`
	Approved        *bool                 `json:"approved,omitempty"`
	AuthCode        string                `json:"auth_code,omitempty"`
	ResponseCode    string                `json:"response_code"`
	ResponseSummary string                `json:"response_summary,omitempty"`
	Reference       string                `json:"reference,omitempty"`
	Processing      *ActionProcessingInfo `json:"processing,omitempty"`
	Metadata        Metadata              `json:"metadata,omitempty"`
}

// ActionSummary is the shortened action record embedded in payment details.
type ActionSummary struct {
	Id              string     `json:"id"`
	Type            ActionType `json:"type"`
	ResponseCode    string     `json:"response_code"`
	ResponseSummary string     `json:"response_summary,omitempty"`
}

// Instrument is a stored payment instrument linked to a customer.
type Instrument struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	Fingerprint string `json:"fingerprint,omitempty"`
	ExpiryMonth int    `json:"expiry_month,omitempty"`
	ExpiryYear  int    `json:"expiry_year,omitempty"`
	Scheme      string `json:"scheme,omitempty"`
	Last4       string `json:"last4,omitempty"`
	Bin         string `json:"bin,omitempty"`
}
