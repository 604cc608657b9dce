package checkout

import (
	"strconv"
	"strings"
)

// API environments
type Environment string

const (
	ENV_PRODUCTION Environment = "production"
	ENV_SANDBOX    Environment = "sandbox"
)

const (
	productionApiUrl    = "https://api.checkout.com"
	productionAccessUrl = "https://access.checkout.com"
	sandboxApiUrl       = "https://api.sandbox.checkout.com"
	sandboxAccessUrl    = "https://access.sandbox.checkout.com"
)

// ParseEnvironmentError is returned for an environment string that is neither
// production nor sandbox. It keeps the original input.
type ParseEnvironmentError struct {
	Value string
}

func (e *ParseEnvironmentError) Error() string {
	return "checkout: unknown environment " + strconv.Quote(e.Value)
}

// ParseEnvironment maps a configuration string onto an Environment. Matching
// is case-insensitive and ignores surrounding whitespace: "prod" and
// "production" select ENV_PRODUCTION, "dev", "development" and "sandbox"
// select ENV_SANDBOX.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return ENV_PRODUCTION, nil
	case "dev", "development", "sandbox":
		return ENV_SANDBOX, nil
	default:
		return "", &ParseEnvironmentError{Value: s}
	}
}

func (e Environment) String() string {
	return string(e)
}

// ApiUrl returns the base url for the payment gateway endpoints.
func (e Environment) ApiUrl() string {
	if e == ENV_PRODUCTION {
		return productionApiUrl
	}
	return sandboxApiUrl
}

// AccessUrl returns the base url of the token endpoint used by OAuth
// client-credentials authentication.
func (e Environment) AccessUrl() string {
	if e == ENV_PRODUCTION {
		return productionAccessUrl
	}
	return sandboxAccessUrl
}
