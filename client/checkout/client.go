package checkout

import (
	"errors"
	"os"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

// Config configures a Client. Exactly one credential form must be set:
// SecretKey for static key authentication, or Username and Password for
// OAuth client-credentials authentication.
type Config struct {
	Environment Environment

	// SecretKey is sent verbatim as the Authorization header.
	SecretKey string

	// Username/Password are exchanged for a bearer token at the access
	// environment's token endpoint. The token is cached until shortly before
	// expiry.
	Username string
	Password string

	// ApiUrl and AccessUrl override the environment base urls. Meant for
	// pointing the client at a mock gateway in tests.
	ApiUrl    string
	AccessUrl string
}

// Client is a client for the payment gateway API. It holds no mutable state
// besides the OAuth token cache and is safe for concurrent use.
type Client struct {
	config *Config
	api    fastshot.ClientHttpMethods
	auth   authStrategy
}

// NewClient validates the configuration and builds a client. Credentials are
// kept unexported and never appear in logs or error values.
func NewClient(config *Config) (*Client, error) {
	apiUrl := config.ApiUrl
	accessUrl := config.AccessUrl
	if apiUrl == "" || (accessUrl == "" && config.SecretKey == "") {
		if config.Environment == "" {
			return nil, errors.New("checkout: config requires an environment or explicit base urls")
		}
		if apiUrl == "" {
			apiUrl = config.Environment.ApiUrl()
		}
		if accessUrl == "" {
			accessUrl = config.Environment.AccessUrl()
		}
	}

	var auth authStrategy
	switch {
	case config.SecretKey != "":
		auth = &staticKeyAuth{secret: config.SecretKey}
	case config.Username != "" && config.Password != "":
		auth = newOauthAuth(config.Username, config.Password, accessUrl)
	default:
		return nil, errors.New("checkout: config requires a secret key or username and password")
	}

	return &Client{
		config: config,
		api:    setupHttpClient(apiUrl),
		auth:   auth,
	}, nil
}

// FromEnv builds a client from CKO_ENVIRONMENT plus either CKO_SECRET_KEY or
// CKO_USERNAME and CKO_PASSWORD.
func FromEnv() (*Client, error) {
	rawEnv, ok := os.LookupEnv("CKO_ENVIRONMENT")
	if !ok {
		return nil, errors.New("checkout: CKO_ENVIRONMENT environment variable not found")
	}
	environment, err := ParseEnvironment(rawEnv)
	if err != nil {
		return nil, err
	}
	config := &Config{Environment: environment}
	if secret, ok := os.LookupEnv("CKO_SECRET_KEY"); ok {
		config.SecretKey = secret
	} else {
		config.Username = os.Getenv("CKO_USERNAME")
		config.Password = os.Getenv("CKO_PASSWORD")
	}
	return NewClient(config)
}

// Environment reports the environment the client was built for.
func (c *Client) Environment() Environment {
	return c.config.Environment
}

func setupHttpClient(baseUrl string) fastshot.ClientHttpMethods {
	return fastshot.NewClient(baseUrl).
		Header().AddAccept(mime.JSON).
		Build()
}
