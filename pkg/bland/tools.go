package bland

import "context"

// ToolParameter describes one input a custom tool accepts.
type ToolParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Default     any    `json:"default,omitempty"`
}

// CustomTool is an HTTP action the AI agent may invoke mid-call.
type CustomTool struct {
	ID              string            `json:"id,omitempty"`
	Name            string            `json:"name,omitempty"`
	Description     string            `json:"description,omitempty"`
	Endpoint        string            `json:"endpoint,omitempty"`
	Method          string            `json:"method,omitempty"`
	Parameters      []ToolParameter   `json:"parameters,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Authentication  map[string]string `json:"authentication,omitempty"`
	ResponseMapping map[string]string `json:"response_mapping,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
}

// CreateCustomToolParams configures a new custom tool. Method is
// case-normalized and must be GET, POST, PUT, or DELETE.
type CreateCustomToolParams struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Endpoint        string            `json:"endpoint"`
	Method          string            `json:"method"`
	Parameters      []ToolParameter   `json:"parameters"`
	Headers         map[string]string `json:"headers,omitempty"`
	Authentication  map[string]string `json:"authentication,omitempty"`
	ResponseMapping map[string]string `json:"response_mapping,omitempty"`
}

// ToolResponse is returned by custom tool mutation operations.
type ToolResponse struct {
	APIResponse
	ToolID string `json:"tool_id,omitempty"`
}

// CreateCustomTool registers a custom tool.
func (c *Client) CreateCustomTool(ctx context.Context, p CreateCustomToolParams) (*ToolResponse, error) {
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if p.Description == "" {
		return nil, &MissingFieldError{Field: "description"}
	}
	if p.Endpoint == "" {
		return nil, &MissingFieldError{Field: "endpoint"}
	}
	if p.Method == "" {
		return nil, &MissingFieldError{Field: "method"}
	}
	if len(p.Parameters) == 0 {
		return nil, &MissingFieldError{Field: "parameters"}
	}
	method, err := normalizeToolMethod(p.Method)
	if err != nil {
		return nil, err
	}
	p.Method = method
	var resp ToolResponse
	if err := c.do(ctx, opCreateTool, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCustomToolParams carries partial updates to a custom tool.
type UpdateCustomToolParams struct {
	Name            string            `json:"name,omitempty"`
	Description     string            `json:"description,omitempty"`
	Endpoint        string            `json:"endpoint,omitempty"`
	Method          string            `json:"method,omitempty"`
	Parameters      []ToolParameter   `json:"parameters,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"`
	Authentication  map[string]string `json:"authentication,omitempty"`
	ResponseMapping map[string]string `json:"response_mapping,omitempty"`
}

func (p UpdateCustomToolParams) empty() bool {
	return p.Name == "" && p.Description == "" && p.Endpoint == "" && p.Method == "" &&
		len(p.Parameters) == 0 && len(p.Headers) == 0 &&
		len(p.Authentication) == 0 && len(p.ResponseMapping) == 0
}

// UpdateCustomTool applies a partial update to a custom tool.
func (c *Client) UpdateCustomTool(ctx context.Context, toolID string, p UpdateCustomToolParams) (*ToolResponse, error) {
	if toolID == "" {
		return nil, &MissingFieldError{Field: "tool_id"}
	}
	if p.empty() {
		return nil, &MissingOneOfError{Fields: []string{"name", "description", "endpoint", "method", "parameters"}}
	}
	if p.Method != "" {
		method, err := normalizeToolMethod(p.Method)
		if err != nil {
			return nil, err
		}
		p.Method = method
	}
	var resp ToolResponse
	if err := c.do(ctx, opUpdateTool, vars{"tool_id": toolID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCustomTool removes a custom tool.
func (c *Client) DeleteCustomTool(ctx context.Context, toolID string) (*ToolResponse, error) {
	if toolID == "" {
		return nil, &MissingFieldError{Field: "tool_id"}
	}
	var resp ToolResponse
	if err := c.do(ctx, opDeleteTool, vars{"tool_id": toolID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToolDetailsResponse is returned by GetCustomToolDetails.
type ToolDetailsResponse struct {
	APIResponse
	CustomTool
}

// GetCustomToolDetails returns one custom tool's configuration.
func (c *Client) GetCustomToolDetails(ctx context.Context, toolID string) (*ToolDetailsResponse, error) {
	if toolID == "" {
		return nil, &MissingFieldError{Field: "tool_id"}
	}
	var resp ToolDetailsResponse
	if err := c.do(ctx, opToolDetails, vars{"tool_id": toolID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListToolsParams pages through the tool listing.
type ListToolsParams struct {
	Page  int `schema:"page,omitempty"`
	Limit int `schema:"limit,omitempty"`
}

// ListToolsResponse is returned by ListCustomTools.
type ListToolsResponse struct {
	APIResponse
	Total int          `json:"total,omitempty"`
	Tools []CustomTool `json:"tools,omitempty"`
}

// ListCustomTools lists the account's custom tools.
func (c *Client) ListCustomTools(ctx context.Context, p ListToolsParams) (*ListToolsResponse, error) {
	if p.Page != 0 && p.Page < 1 {
		return nil, &RangeError{Field: "page", Value: float64(p.Page), Min: 1}
	}
	if p.Limit != 0 && p.Limit < 1 {
		return nil, &RangeError{Field: "limit", Value: float64(p.Limit), Min: 1}
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp ListToolsResponse
	if err := c.do(ctx, opListTools, nil, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
