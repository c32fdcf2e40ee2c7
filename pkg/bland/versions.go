package bland

import "context"

// PathwayVersion is one saved revision of a pathway graph.
type PathwayVersion struct {
	VersionID   string `json:"version_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	IsLive      bool   `json:"is_live,omitempty"`
	Nodes       []Node `json:"nodes,omitempty"`
	Edges       []Edge `json:"edges,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CreatePathwayVersionParams names a new version, optionally replacing
// the graph it snapshots.
type CreatePathwayVersionParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Nodes       []Node `json:"nodes,omitempty"`
	Edges       []Edge `json:"edges,omitempty"`
}

// PathwayVersionResponse is returned by version mutation operations.
type PathwayVersionResponse struct {
	APIResponse
	VersionID string `json:"version_id,omitempty"`
}

// CreatePathwayVersion snapshots a pathway into a new named version.
func (c *Client) CreatePathwayVersion(ctx context.Context, pathwayID string, p CreatePathwayVersionParams) (*PathwayVersionResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	var resp PathwayVersionResponse
	if err := c.do(ctx, opCreateVersion, vars{"pathway_id": pathwayID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPathwayVersionsResponse is returned by GetPathwayVersions.
type ListPathwayVersionsResponse struct {
	APIResponse
	Versions []PathwayVersion `json:"versions,omitempty"`
}

// GetPathwayVersions lists every saved version of a pathway.
func (c *Client) GetPathwayVersions(ctx context.Context, pathwayID string) (*ListPathwayVersionsResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	var resp ListPathwayVersionsResponse
	if err := c.do(ctx, opListVersions, vars{"pathway_id": pathwayID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PathwayVersionDetailsResponse is returned by GetPathwayVersion.
type PathwayVersionDetailsResponse struct {
	APIResponse
	PathwayVersion
}

// GetPathwayVersion returns one saved version with its full graph.
func (c *Client) GetPathwayVersion(ctx context.Context, pathwayID, versionID string) (*PathwayVersionDetailsResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	if versionID == "" {
		return nil, &MissingFieldError{Field: "version_id"}
	}
	var resp PathwayVersionDetailsResponse
	if err := c.do(ctx, opVersionDetails, vars{"pathway_id": pathwayID, "version_id": versionID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PromotePathwayVersion makes a saved version the live one.
func (c *Client) PromotePathwayVersion(ctx context.Context, pathwayID, versionID string) (*PathwayVersionResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	if versionID == "" {
		return nil, &MissingFieldError{Field: "version_id"}
	}
	var resp PathwayVersionResponse
	if err := c.do(ctx, opPromoteVersion, vars{"pathway_id": pathwayID, "version_id": versionID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeletePathwayVersion removes a saved version.
func (c *Client) DeletePathwayVersion(ctx context.Context, pathwayID, versionID string) (*PathwayVersionResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	if versionID == "" {
		return nil, &MissingFieldError{Field: "version_id"}
	}
	var resp PathwayVersionResponse
	if err := c.do(ctx, opDeleteVersion, vars{"pathway_id": pathwayID, "version_id": versionID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
