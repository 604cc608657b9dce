package checkout

import (
	"encoding/base64"
	"encoding/json"
)

func mustMarshalJson(data any) []byte {
	body, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return body
}

func basicAuth(username, password string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return "Basic " + credentials
}
