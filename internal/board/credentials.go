package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCredentials reads the bearer token from a JSON credentials file of the
// form {"api_key": "..."}. The token is opaque: its shape is not validated
// here, only forwarded on fetch calls.
func LoadCredentials(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &CredentialError{Path: path, Err: err}
	}

	var creds struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", &CredentialError{Path: path, Err: err}
	}
	if creds.APIKey == "" {
		return "", &CredentialError{Path: path, Err: fmt.Errorf("api_key is empty")}
	}
	return creds.APIKey, nil
}
