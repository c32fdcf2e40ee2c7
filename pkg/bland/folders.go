package bland

import "context"

// Folder groups pathways in the provider dashboard.
type Folder struct {
	FolderID    string `json:"folder_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type createFolderBody struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FolderResponse is returned by folder mutation operations.
type FolderResponse struct {
	APIResponse
	FolderID string `json:"folder_id,omitempty"`
}

// CreateFolder creates a pathway folder.
func (c *Client) CreateFolder(ctx context.Context, name, description string) (*FolderResponse, error) {
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	var resp FolderResponse
	if err := c.do(ctx, opCreateFolder, nil, createFolderBody{Name: name, Description: description}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type updateFolderBody struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateFolder renames or re-describes a folder. At least one of name
// or description must be given.
func (c *Client) UpdateFolder(ctx context.Context, folderID, name, description string) (*FolderResponse, error) {
	if folderID == "" {
		return nil, &MissingFieldError{Field: "folder_id"}
	}
	if name == "" && description == "" {
		return nil, &MissingOneOfError{Fields: []string{"name", "description"}}
	}
	var resp FolderResponse
	if err := c.do(ctx, opUpdateFolder, vars{"folder_id": folderID}, updateFolderBody{Name: name, Description: description}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteFolder removes a folder.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) (*FolderResponse, error) {
	if folderID == "" {
		return nil, &MissingFieldError{Field: "folder_id"}
	}
	var resp FolderResponse
	if err := c.do(ctx, opDeleteFolder, vars{"folder_id": folderID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListFoldersResponse is returned by GetAllFolders.
type ListFoldersResponse struct {
	APIResponse
	Folders []Folder `json:"folders,omitempty"`
}

// GetAllFolders lists the account's pathway folders.
func (c *Client) GetAllFolders(ctx context.Context) (*ListFoldersResponse, error) {
	var resp ListFoldersResponse
	if err := c.do(ctx, opListFolders, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FolderPathwaysResponse is returned by GetFolderPathways.
type FolderPathwaysResponse struct {
	APIResponse
	Pathways []Pathway `json:"pathways,omitempty"`
}

// GetFolderPathways lists the pathways inside one folder.
func (c *Client) GetFolderPathways(ctx context.Context, folderID string) (*FolderPathwaysResponse, error) {
	if folderID == "" {
		return nil, &MissingFieldError{Field: "folder_id"}
	}
	var resp FolderPathwaysResponse
	if err := c.do(ctx, opFolderPathways, vars{"folder_id": folderID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
