package bland

import "context"

// WebAgent is a provider-side browsing agent a call can delegate web
// actions to.
type WebAgent struct {
	AgentID        string            `json:"agent_id,omitempty"`
	Name           string            `json:"name,omitempty"`
	Description    string            `json:"description,omitempty"`
	WebsiteURL     string            `json:"website_url,omitempty"`
	AllowedDomains []string          `json:"allowed_domains,omitempty"`
	Capabilities   []string          `json:"capabilities,omitempty"`
	RateLimit      int               `json:"rate_limit,omitempty"`
	MaxPages       int               `json:"max_pages,omitempty"`
	CustomHeaders  map[string]string `json:"custom_headers,omitempty"`
	CreatedAt      string            `json:"created_at,omitempty"`
}

// CreateWebAgentParams configures a new web agent.
type CreateWebAgentParams struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	WebsiteURL     string            `json:"website_url"`
	AllowedDomains []string          `json:"allowed_domains"`
	Capabilities   []string          `json:"capabilities,omitempty"`
	Authentication map[string]any    `json:"authentication,omitempty"`
	CustomHeaders  map[string]string `json:"custom_headers,omitempty"`
	RateLimit      int               `json:"rate_limit,omitempty"`
	MaxPages       int               `json:"max_pages,omitempty"`
}

// WebAgentResponse is returned by web agent mutation operations.
type WebAgentResponse struct {
	APIResponse
	AgentID string `json:"agent_id,omitempty"`
}

// CreateWebAgent registers a web agent.
func (c *Client) CreateWebAgent(ctx context.Context, p CreateWebAgentParams) (*WebAgentResponse, error) {
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if p.Description == "" {
		return nil, &MissingFieldError{Field: "description"}
	}
	if p.WebsiteURL == "" {
		return nil, &MissingFieldError{Field: "website_url"}
	}
	if len(p.AllowedDomains) == 0 {
		return nil, &MissingFieldError{Field: "allowed_domains"}
	}
	var resp WebAgentResponse
	if err := c.do(ctx, opCreateAgent, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateWebAgentParams carries partial updates to a web agent.
type UpdateWebAgentParams struct {
	Name           string            `json:"name,omitempty"`
	Description    string            `json:"description,omitempty"`
	WebsiteURL     string            `json:"website_url,omitempty"`
	AllowedDomains []string          `json:"allowed_domains,omitempty"`
	Capabilities   []string          `json:"capabilities,omitempty"`
	Authentication map[string]any    `json:"authentication,omitempty"`
	CustomHeaders  map[string]string `json:"custom_headers,omitempty"`
	RateLimit      int               `json:"rate_limit,omitempty"`
	MaxPages       int               `json:"max_pages,omitempty"`
}

func (p UpdateWebAgentParams) empty() bool {
	return p.Name == "" && p.Description == "" && p.WebsiteURL == "" &&
		len(p.AllowedDomains) == 0 && len(p.Capabilities) == 0 &&
		len(p.Authentication) == 0 && len(p.CustomHeaders) == 0 &&
		p.RateLimit == 0 && p.MaxPages == 0
}

// UpdateWebAgent applies a partial update to a web agent.
func (c *Client) UpdateWebAgent(ctx context.Context, agentID string, p UpdateWebAgentParams) (*WebAgentResponse, error) {
	if agentID == "" {
		return nil, &MissingFieldError{Field: "agent_id"}
	}
	if p.empty() {
		return nil, &MissingOneOfError{Fields: []string{"name", "description", "website_url", "allowed_domains"}}
	}
	var resp WebAgentResponse
	if err := c.do(ctx, opUpdateAgent, vars{"agent_id": agentID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteWebAgent removes a web agent.
func (c *Client) DeleteWebAgent(ctx context.Context, agentID string) (*WebAgentResponse, error) {
	if agentID == "" {
		return nil, &MissingFieldError{Field: "agent_id"}
	}
	var resp WebAgentResponse
	if err := c.do(ctx, opDeleteAgent, vars{"agent_id": agentID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWebAgentsParams pages through the agent listing.
type ListWebAgentsParams struct {
	Limit  int  `schema:"limit,omitempty"`
	Offset *int `schema:"offset,omitempty"`
}

// ListWebAgentsResponse is returned by ListWebAgents.
type ListWebAgentsResponse struct {
	APIResponse
	Agents []WebAgent `json:"agents,omitempty"`
}

// ListWebAgents lists the account's web agents.
func (c *Client) ListWebAgents(ctx context.Context, p ListWebAgentsParams) (*ListWebAgentsResponse, error) {
	if p.Limit != 0 && p.Limit < 1 {
		return nil, &RangeError{Field: "limit", Value: float64(p.Limit), Min: 1}
	}
	if p.Offset != nil && *p.Offset < 0 {
		return nil, &RangeError{Field: "offset", Value: float64(*p.Offset), Min: 0}
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp ListWebAgentsResponse
	if err := c.do(ctx, opListAgents, nil, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthorizeWebAgentParams authorizes one web action on behalf of an
// in-progress call.
type AuthorizeWebAgentParams struct {
	CallID     string         `json:"call_id"`
	Action     string         `json:"action"`
	TargetURL  string         `json:"target_url"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
}

// AuthorizeWebAgentResponse is returned by AuthorizeWebAgent.
type AuthorizeWebAgentResponse struct {
	APIResponse
	AuthorizationID string `json:"authorization_id,omitempty"`
}

// AuthorizeWebAgent grants a web agent permission to act on a target
// URL for the given call.
func (c *Client) AuthorizeWebAgent(ctx context.Context, agentID string, p AuthorizeWebAgentParams) (*AuthorizeWebAgentResponse, error) {
	if agentID == "" {
		return nil, &MissingFieldError{Field: "agent_id"}
	}
	if p.CallID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	if p.Action == "" {
		return nil, &MissingFieldError{Field: "action"}
	}
	if p.TargetURL == "" {
		return nil, &MissingFieldError{Field: "target_url"}
	}
	var resp AuthorizeWebAgentResponse
	if err := c.do(ctx, opAuthorizeAgent, vars{"agent_id": agentID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
