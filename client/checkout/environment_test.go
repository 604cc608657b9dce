package checkout_test

import (
	"testing"

	"cko/client/checkout"

	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]checkout.Environment{
		"PROD":        checkout.ENV_PRODUCTION,
		"production":  checkout.ENV_PRODUCTION,
		"Production":  checkout.ENV_PRODUCTION,
		"sandbox":     checkout.ENV_SANDBOX,
		"dev":         checkout.ENV_SANDBOX,
		"development": checkout.ENV_SANDBOX,
		" sandbox ":   checkout.ENV_SANDBOX,
	}
	for input, want := range cases {
		got, err := checkout.ParseEnvironment(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

func TestParseEnvironment_UnknownValueKeepsInput(t *testing.T) {
	_, err := checkout.ParseEnvironment("staging")
	require.Error(t, err)

	var parseErr *checkout.ParseEnvironmentError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "staging", parseErr.Value)
}

func TestEnvironmentUrls(t *testing.T) {
	require.Equal(t, "https://api.checkout.com", checkout.ENV_PRODUCTION.ApiUrl())
	require.Equal(t, "https://access.checkout.com", checkout.ENV_PRODUCTION.AccessUrl())
	require.Equal(t, "https://api.sandbox.checkout.com", checkout.ENV_SANDBOX.ApiUrl())
	require.Equal(t, "https://access.sandbox.checkout.com", checkout.ENV_SANDBOX.AccessUrl())
}
