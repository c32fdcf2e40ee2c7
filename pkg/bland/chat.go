package bland

import "context"

// ChatMessage is one turn in a pathway chat session.
type ChatMessage struct {
	Role      string `json:"role,omitempty"`
	Content   string `json:"content,omitempty"`
	NodeID    string `json:"node_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// createChatBody starts a chat session against a pathway.
type createChatBody struct {
	PathwayID   string `json:"pathway_id"`
	StartNodeID string `json:"start_node_id,omitempty"`
}

// CreateChatResponse is returned by CreatePathwayChat.
type CreateChatResponse struct {
	APIResponse
	ChatID string `json:"chat_id,omitempty"`
}

// CreatePathwayChat opens a text chat session that walks a pathway
// without placing a call. Useful for testing pathway logic.
func (c *Client) CreatePathwayChat(ctx context.Context, pathwayID, startNodeID string) (*CreateChatResponse, error) {
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	var resp CreateChatResponse
	if err := c.do(ctx, opCreateChat, nil, createChatBody{PathwayID: pathwayID, StartNodeID: startNodeID}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type chatMessageBody struct {
	Message string `json:"message,omitempty"`
}

// ChatMessageResponse is returned by SendPathwayChatMessage.
type ChatMessageResponse struct {
	APIResponse
	ChatID            string `json:"chat_id,omitempty"`
	AssistantResponse string `json:"assistant_response,omitempty"`
	CurrentNodeID     string `json:"current_node_id,omitempty"`
}

// SendPathwayChatMessage sends one user message into a chat session.
// An empty message advances the pathway to its first prompt.
func (c *Client) SendPathwayChatMessage(ctx context.Context, chatID, message string) (*ChatMessageResponse, error) {
	if chatID == "" {
		return nil, &MissingFieldError{Field: "chat_id"}
	}
	var resp ChatMessageResponse
	if err := c.do(ctx, opSendChat, vars{"chat_id": chatID}, chatMessageBody{Message: message}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatHistoryResponse is returned by GetPathwayChatHistory.
type ChatHistoryResponse struct {
	APIResponse
	ChatID   string        `json:"chat_id,omitempty"`
	Messages []ChatMessage `json:"messages,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
}

// GetPathwayChatHistory returns the transcript of a chat session.
func (c *Client) GetPathwayChatHistory(ctx context.Context, chatID string) (*ChatHistoryResponse, error) {
	if chatID == "" {
		return nil, &MissingFieldError{Field: "chat_id"}
	}
	var resp ChatHistoryResponse
	if err := c.do(ctx, opChatHistory, vars{"chat_id": chatID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
