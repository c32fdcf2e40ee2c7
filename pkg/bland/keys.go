package bland

import "context"

// CreateEncryptedKeyParams stores a secret with the provider for use by
// custom tools and web agents. KeyType must be one of api_key,
// password, token, or secret.
type CreateEncryptedKeyParams struct {
	Name        string         `json:"name"`
	KeyType     string         `json:"key_type"`
	Value       string         `json:"value"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// EncryptedKeyResponse is returned by the encrypted key operations.
type EncryptedKeyResponse struct {
	APIResponse
	KeyID string `json:"key_id,omitempty"`
}

// CreateEncryptedKey stores a secret with the provider.
func (c *Client) CreateEncryptedKey(ctx context.Context, p CreateEncryptedKeyParams) (*EncryptedKeyResponse, error) {
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if p.KeyType == "" {
		return nil, &MissingFieldError{Field: "key_type"}
	}
	if p.Value == "" {
		return nil, &MissingFieldError{Field: "value"}
	}
	if err := checkEnum("key_type", p.KeyType, KeyTypes); err != nil {
		return nil, err
	}
	var resp EncryptedKeyResponse
	if err := c.do(ctx, opCreateKey, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteEncryptedKey removes a stored secret.
func (c *Client) DeleteEncryptedKey(ctx context.Context, keyID string) (*EncryptedKeyResponse, error) {
	if keyID == "" {
		return nil, &MissingFieldError{Field: "key_id"}
	}
	var resp EncryptedKeyResponse
	if err := c.do(ctx, opDeleteKey, vars{"key_id": keyID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
