package bland

import "context"

// Vector is a knowledge-base document the AI agent can draw on
// mid-call.
type Vector struct {
	VectorID    string `json:"vector_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type vectorBody struct {
	Name string `json:"name,omitempty"`
	Data string `json:"data,omitempty"`
}

// VectorResponse is returned by vector mutation operations.
type VectorResponse struct {
	APIResponse
	VectorID string `json:"vector_id,omitempty"`
}

// CreateVector stores a knowledge-base document.
func (c *Client) CreateVector(ctx context.Context, name, data string) (*VectorResponse, error) {
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if data == "" {
		return nil, &MissingFieldError{Field: "data"}
	}
	var resp VectorResponse
	if err := c.do(ctx, opCreateVector, nil, vectorBody{Name: name, Data: data}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateVector replaces a document's name, contents, or both.
func (c *Client) UpdateVector(ctx context.Context, vectorID, name, data string) (*VectorResponse, error) {
	if vectorID == "" {
		return nil, &MissingFieldError{Field: "vector_id"}
	}
	if name == "" && data == "" {
		return nil, &MissingOneOfError{Fields: []string{"name", "data"}}
	}
	var resp VectorResponse
	if err := c.do(ctx, opUpdateVector, vars{"vector_id": vectorID}, vectorBody{Name: name, Data: data}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VectorDetailsResponse is returned by GetVectorDetails.
type VectorDetailsResponse struct {
	APIResponse
	Vector
}

// GetVectorDetails returns one knowledge-base document's metadata.
func (c *Client) GetVectorDetails(ctx context.Context, vectorID string) (*VectorDetailsResponse, error) {
	if vectorID == "" {
		return nil, &MissingFieldError{Field: "vector_id"}
	}
	var resp VectorDetailsResponse
	if err := c.do(ctx, opVectorDetails, vars{"vector_id": vectorID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteVector removes a knowledge-base document.
func (c *Client) DeleteVector(ctx context.Context, vectorID string) (*VectorResponse, error) {
	if vectorID == "" {
		return nil, &MissingFieldError{Field: "vector_id"}
	}
	var resp VectorResponse
	if err := c.do(ctx, opDeleteVector, vars{"vector_id": vectorID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
