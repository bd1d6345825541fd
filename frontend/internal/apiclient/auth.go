package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register asks the API to create an account. Any 2xx answer is success;
// anything else comes back as *errors.APIError carrying the raw body.
func (c *APIClient) Register(ctx context.Context, email, password string) error {
	jsonBody, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to marshal register data: %w", err)
	}

	resp, err := c.do(ctx, "POST", "/v1/auth/register", bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	return checkStatus(resp)
}
