package checkout_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cko/client/checkout"

	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		require.Equal(t, testSecretKey, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "jane@example.com", body["email"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id": "cus_7"}`)
	}))
	defer server.Close()

	response, err := newTestClient(t, server.URL).CreateCustomer(&checkout.CreateCustomerRequest{
		Email: "jane@example.com",
		Name:  "Jane Doe",
	})
	require.NoError(t, err)
	require.Equal(t, "cus_7", response.Id)
}

func TestGetCustomerDetails_ByIdOrEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/customers/jane@example.com", r.URL.Path)
		io.WriteString(w, `{
			"id": "cus_7",
			"email": "jane@example.com",
			"name": "Jane Doe",
			"default": "src_1",
			"instruments": [{"id": "src_1", "type": "card", "last4": "4242"}]
		}`)
	}))
	defer server.Close()

	details, err := newTestClient(t, server.URL).GetCustomerDetails("jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "cus_7", details.Id)
	require.Equal(t, "src_1", details.DefaultInstrumentId)
	require.Len(t, details.Instruments, 1)
	require.Equal(t, "4242", details.Instruments[0].Last4)
}

func TestUpdateCustomer_NoResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/customers/cus_7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Jane A. Doe", body["name"])
		require.NotContains(t, body, "id")

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newTestClient(t, server.URL).UpdateCustomer(&checkout.UpdateCustomerRequest{
		CustomerId: "cus_7",
		Name:       "Jane A. Doe",
	})
	require.NoError(t, err)
}

func TestDeleteCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/customers/cus_7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, newTestClient(t, server.URL).DeleteCustomer("cus_7"))
}

func TestDeleteCustomer_NotFoundIsUnknownStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newTestClient(t, server.URL).DeleteCustomer("cus_unknown")
	var unknown *checkout.UnknownStatusError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, http.StatusNotFound, unknown.StatusCode)
}
