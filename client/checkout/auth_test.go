package checkout_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cko/client/checkout"

	"github.com/stretchr/testify/require"
)

func newOauthTestClient(t *testing.T, apiUrl, accessUrl string) *checkout.Client {
	t.Helper()
	client, err := checkout.NewClient(&checkout.Config{
		Environment: checkout.ENV_SANDBOX,
		Username:    "ack_user",
		Password:    "hunter2",
		ApiUrl:      apiUrl,
		AccessUrl:   accessUrl,
	})
	require.NoError(t, err)
	return client
}

func tokenHandler(t *testing.T, tokenFetches *atomic.Int64, expiresIn string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenFetches.Add(1)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/connect/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "ack_user", username)
		require.Equal(t, "hunter2", password)

		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		require.Equal(t, "gateway", r.PostForm.Get("scope"))

		io.WriteString(w, `{"access_token": "tok_1", "token_type": "Bearer", "expires_in": `+expiresIn+`}`)
	}
}

func TestOauth_BearerTokenAttachedToApiCalls(t *testing.T) {
	var tokenFetches atomic.Int64
	access := httptest.NewServer(tokenHandler(t, &tokenFetches, "3600"))
	defer access.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok_1", r.Header.Get("Authorization"))
		io.WriteString(w, `{"id": "pay_1", "amount": 100, "currency": "USD", "payment_type": "Regular", "status": "Authorized", "approved": true, "requested_on": "2026-08-24T09:15:00Z"}`)
	}))
	defer api.Close()

	client := newOauthTestClient(t, api.URL, access.URL)
	_, err := client.GetPaymentDetails(&checkout.GetPaymentDetailsRequest{PaymentId: "pay_1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), tokenFetches.Load())
}

func TestOauth_TokenCachedAcrossCalls(t *testing.T) {
	var tokenFetches atomic.Int64
	access := httptest.NewServer(tokenHandler(t, &tokenFetches, "3600"))
	defer access.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer api.Close()

	client := newOauthTestClient(t, api.URL, access.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GetPaymentActions(&checkout.GetPaymentActionsRequest{PaymentId: "pay_1"})
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), tokenFetches.Load())
}

func TestOauth_ShortLivedTokenIsRefetched(t *testing.T) {
	// expires_in of 1s is inside the refresh margin, so every call must
	// fetch a fresh token.
	var tokenFetches atomic.Int64
	access := httptest.NewServer(tokenHandler(t, &tokenFetches, "1"))
	defer access.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer api.Close()

	client := newOauthTestClient(t, api.URL, access.URL)
	for i := 0; i < 2; i++ {
		_, err := client.GetPaymentActions(&checkout.GetPaymentActionsRequest{PaymentId: "pay_1"})
		require.NoError(t, err)
	}
	require.Equal(t, int64(2), tokenFetches.Load())
}

func TestOauth_TokenEndpointFailureStopsBeforeApiCall(t *testing.T) {
	access := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer access.Close()

	var apiCalls atomic.Int64
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
	}))
	defer api.Close()

	client := newOauthTestClient(t, api.URL, access.URL)
	_, err := client.GetPaymentDetails(&checkout.GetPaymentDetailsRequest{PaymentId: "pay_1"})
	require.ErrorIs(t, err, checkout.ErrUnauthorized)
	require.Equal(t, int64(0), apiCalls.Load())
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := checkout.NewClient(&checkout.Config{Environment: checkout.ENV_SANDBOX})
	require.Error(t, err)
}

func TestNewClient_RequiresEnvironmentOrUrls(t *testing.T) {
	_, err := checkout.NewClient(&checkout.Config{SecretKey: "sk_test_x"})
	require.Error(t, err)
}
