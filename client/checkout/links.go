package checkout

// Links maps well-known relation names to related resources. Responses carry
// it under the "_links" key.
type Links map[string]Link

// Link is a reference to another resource.
type Link struct {
	Href string `json:"href"`
}

// Well-known link names
const (
	LINK_SELF     = "self"
	LINK_ACTIONS  = "actions"
	LINK_VOID     = "void"
	LINK_CAPTURE  = "capture"
	LINK_REFUND   = "refund"
	LINK_PAYMENT  = "payment"
	LINK_REDIRECT = "redirect"
	LINK_NEXT     = "next"
)
