package bland

import "context"

// Node is one node in a conversation pathway graph.
type Node struct {
	ID   string         `json:"id"`
	Type string         `json:"type,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

// Edge connects two pathway nodes.
type Edge struct {
	ID     string `json:"id,omitempty"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// Pathway is a provider-side conversation flow graph.
type Pathway struct {
	PathwayID   string         `json:"pathway_id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Version     int            `json:"version,omitempty"`
	Status      string         `json:"status,omitempty"`
	FolderID    string         `json:"folder_id,omitempty"`
	Nodes       []Node         `json:"nodes,omitempty"`
	Edges       []Edge         `json:"edges,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

// CreatePathwayParams configures pathway creation. Name, Nodes, and
// Edges are required.
type CreatePathwayParams struct {
	Name        string         `json:"name"`
	Nodes       []Node         `json:"nodes"`
	Edges       []Edge         `json:"edges"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// PathwayResponse is returned by pathway mutation operations.
type PathwayResponse struct {
	APIResponse
	PathwayID string `json:"pathway_id,omitempty"`
}

// CreatePathway creates a new conversation pathway.
func (c *Client) CreatePathway(ctx context.Context, p CreatePathwayParams) (*PathwayResponse, error) {
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if len(p.Nodes) == 0 {
		return nil, &MissingFieldError{Field: "nodes"}
	}
	if len(p.Edges) == 0 {
		return nil, &MissingFieldError{Field: "edges"}
	}
	var resp PathwayResponse
	if err := c.do(ctx, opCreatePathway, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePathwayParams carries partial updates to a pathway. At least
// one field must be set.
type UpdatePathwayParams struct {
	Name        string         `json:"name,omitempty"`
	Nodes       []Node         `json:"nodes,omitempty"`
	Edges       []Edge         `json:"edges,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func (p UpdatePathwayParams) empty() bool {
	return p.Name == "" && len(p.Nodes) == 0 && len(p.Edges) == 0 &&
		p.Description == "" && len(p.Metadata) == 0
}

// UpdatePathway applies a partial update to an existing pathway.
func (c *Client) UpdatePathway(ctx context.Context, pathwayID string, p UpdatePathwayParams) (*PathwayResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	if p.empty() {
		return nil, &MissingOneOfError{Fields: []string{"name", "nodes", "edges", "description", "metadata"}}
	}
	var resp PathwayResponse
	if err := c.do(ctx, opUpdatePathway, vars{"pathway_id": pathwayID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePathway deletes a pathway.
func (c *Client) DeletePathway(ctx context.Context, pathwayID string) (*PathwayResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	var resp PathwayResponse
	if err := c.do(ctx, opDeletePathway, vars{"pathway_id": pathwayID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PathwayInfoResponse is returned by GetPathwayInfo.
type PathwayInfoResponse struct {
	APIResponse
	Pathway
}

// GetPathwayInfo returns the full graph and metadata for one pathway.
func (c *Client) GetPathwayInfo(ctx context.Context, pathwayID string) (*PathwayInfoResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	var resp PathwayInfoResponse
	if err := c.do(ctx, opPathwayInfo, vars{"pathway_id": pathwayID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPathwaysParams pages through the pathway listing.
type ListPathwaysParams struct {
	Limit  int  `schema:"limit,omitempty"`
	Offset *int `schema:"offset,omitempty"`
}

// ListPathwaysResponse is returned by GetAllPathways.
type ListPathwaysResponse struct {
	APIResponse
	TotalCount int       `json:"total_count,omitempty"`
	Pathways   []Pathway `json:"pathways,omitempty"`
}

// GetAllPathways lists the account's pathways.
func (c *Client) GetAllPathways(ctx context.Context, p ListPathwaysParams) (*ListPathwaysResponse, error) {
	if p.Limit == 0 {
		p.Limit = c.defaults.Limit
	}
	if p.Limit < 1 {
		return nil, &RangeError{Field: "limit", Value: float64(p.Limit), Min: 1}
	}
	if p.Offset != nil && *p.Offset < 0 {
		return nil, &RangeError{Field: "offset", Value: float64(*p.Offset), Min: 0}
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp ListPathwaysResponse
	if err := c.do(ctx, opListPathways, nil, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// movePathwayBody targets a destination folder; empty folder_id moves
// the pathway to the root.
type movePathwayBody struct {
	FolderID string `json:"folder_id,omitempty"`
}

// MovePathway moves a pathway into a folder, or to the root when
// folderID is empty.
func (c *Client) MovePathway(ctx context.Context, pathwayID, folderID string) (*PathwayResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	var resp PathwayResponse
	if err := c.do(ctx, opMovePathway, vars{"pathway_id": pathwayID}, movePathwayBody{FolderID: folderID}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
