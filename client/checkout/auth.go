package checkout

import (
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

// Tokens are refreshed this long before their reported expiry so an almost
// expired token is never sent.
const tokenExpiryMargin = 30 * time.Second

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// authStrategy resolves the Authorization header value for an outbound call.
// Selected once at construction: a static secret key, or OAuth client
// credentials against the access environment.
type authStrategy interface {
	headerValue() (string, error)
}

// staticKeyAuth sends the secret key verbatim as the Authorization value.
type staticKeyAuth struct {
	secret string
}

func (s *staticKeyAuth) headerValue() (string, error) {
	return s.secret, nil
}

// oauthAuth exchanges username/password for a short-lived bearer token at
// {access_url}/connect/token and caches it until shortly before expiry.
// The cache is mutex-guarded so concurrent calls never race to refresh.
type oauthAuth struct {
	username string
	password string
	access   fastshot.ClientHttpMethods

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newOauthAuth(username, password, accessUrl string) *oauthAuth {
	return &oauthAuth{
		username: username,
		password: password,
		access:   fastshot.NewClient(accessUrl).Build(),
	}
}

func (o *oauthAuth) headerValue() (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.token != "" && time.Now().Add(tokenExpiryMargin).Before(o.expiresAt) {
		return "Bearer " + o.token, nil
	}
	token, expiresIn, err := o.fetchToken()
	if err != nil {
		return "", err
	}
	o.token = token
	o.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	return "Bearer " + token, nil
}

func (o *oauthAuth) fetchToken() (string, int64, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "gateway")

	resp, err := o.access.POST("/connect/token").
		Header().Add(headerAuthorization, basicAuth(o.username, o.password)).
		Header().Add(headerContentType, contentTypeForm).
		Body().AsString(form.Encode()).
		Send()
	if err != nil {
		return "", 0, &TransportError{Err: err}
	}
	if resp.Status().Code() != http.StatusOK {
		slog.Debug("[CheckoutClient] token endpoint refused credentials", "status", resp.Status().Code())
		return "", 0, ErrUnauthorized
	}
	var body oauthTokenResponse
	if err := resp.Body().AsJSON(&body); err != nil {
		return "", 0, &DecodeError{Err: err}
	}
	return body.AccessToken, body.ExpiresIn, nil
}
