package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

// Handlers contains all tool handlers for the Bland MCP server.
type Handlers struct {
	auth *AuthState
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(auth *AuthState) *Handlers {
	return &Handlers{auth: auth}
}

// === Authentication Handlers ===

// HandleAuthenticate handles the bland_authenticate tool.
func (h *Handlers) HandleAuthenticate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apiKey, err := req.RequireString("api_key")
	if err != nil {
		return mcp.NewToolResultError("api_key is required"), nil
	}

	orgID := req.GetString("org_id", "")
	h.auth.SetAuth(apiKey, orgID)

	// Verify the key is accepted before reporting success.
	c := h.auth.GetClient()
	resp, err := c.ListVoices(ctx)
	if err != nil {
		h.auth.Clear()
		return mcp.NewToolResultErrorFromErr("Authentication failed", err), nil
	}
	if resp.IsError() {
		h.auth.Clear()
		return mcp.NewToolResultError(fmt.Sprintf("API key rejected: %s", resp.Message)), nil
	}

	text := "Authenticated with the Bland API."
	if orgID != "" {
		text += fmt.Sprintf("\nOrganization: %s", orgID)
	}
	return mcp.NewToolResultText(text), nil
}

// HandleStatus handles the bland_status tool.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultText("Not authenticated. Use bland_authenticate or set BLAND_API_KEY."), nil
	}

	// Verify the key is still accepted by the API.
	c := h.auth.GetClient()
	resp, err := c.ListVoices(ctx)
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("API key check failed: %v", err)), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultText(fmt.Sprintf("API key rejected: %s", resp.Message)), nil
	}

	text := "Authenticated with the Bland API."
	if orgID := h.auth.GetOrgID(); orgID != "" {
		text += fmt.Sprintf("\nOrganization: %s", orgID)
	}
	return mcp.NewToolResultText(text), nil
}

// === Call Handlers ===

// HandleSendCall handles the bland_send_call tool.
func (h *Handlers) HandleSendCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	phoneNumber, err := req.RequireString("phone_number")
	if err != nil {
		return mcp.NewToolResultError("phone_number is required"), nil
	}

	params := bland.SendCallParams{
		PhoneNumber:   phoneNumber,
		Task:          req.GetString("task", ""),
		PathwayID:     req.GetString("pathway_id", ""),
		Voice:         req.GetString("voice", ""),
		Model:         req.GetString("model", ""),
		FirstSentence: req.GetString("first_sentence", ""),
		Record:        req.GetBool("record", false),
	}
	args := req.GetArguments()
	if _, ok := args["max_duration"]; ok {
		d := req.GetInt("max_duration", 0)
		params.MaxDuration = &d
	}
	if _, ok := args["temperature"]; ok {
		t := req.GetFloat("temperature", 0)
		params.Temperature = &t
	}

	c := h.auth.GetClient()
	resp, err := c.SendCall(ctx, params)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to send call", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send call: %s", resp.Message)), nil
	}

	text := fmt.Sprintf("Call queued!\nCall ID: %s", resp.CallID)
	if resp.BatchID != "" {
		text += fmt.Sprintf("\nBatch ID: %s", resp.BatchID)
	}
	return mcp.NewToolResultText(text), nil
}

// HandleStopCall handles the bland_stop_call tool.
func (h *Handlers) HandleStopCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	callID, err := req.RequireString("call_id")
	if err != nil {
		return mcp.NewToolResultError("call_id is required"), nil
	}

	c := h.auth.GetClient()
	resp, err := c.StopCall(ctx, callID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to stop call", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to stop call: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Stopped call %s", callID)), nil
}

// HandleListCalls handles the bland_list_calls tool.
func (h *Handlers) HandleListCalls(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	limit := req.GetInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	c := h.auth.GetClient()
	resp, err := c.ListCalls(ctx, bland.ListCallsParams{
		Limit:    limit,
		ToNumber: req.GetString("to_number", ""),
		BatchID:  req.GetString("batch_id", ""),
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list calls", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list calls: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatCallList(resp.Calls, resp.Count)), nil
}

// HandleCallDetails handles the bland_call_details tool.
func (h *Handlers) HandleCallDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	callID, err := req.RequireString("call_id")
	if err != nil {
		return mcp.NewToolResultError("call_id is required"), nil
	}

	c := h.auth.GetClient()
	resp, err := c.GetCallDetails(ctx, callID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to fetch call", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch call: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatCall(&resp.Call)), nil
}

// HandleCallTranscript handles the bland_call_transcript tool.
func (h *Handlers) HandleCallTranscript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	callID, err := req.RequireString("call_id")
	if err != nil {
		return mcp.NewToolResultError("call_id is required"), nil
	}

	c := h.auth.GetClient()
	resp, err := c.GetCallTranscripts(ctx, callID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to fetch transcript", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch transcript: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatTranscripts(callID, resp.Transcripts)), nil
}

// HandleAnalyzeCall handles the bland_analyze_call tool.
func (h *Handlers) HandleAnalyzeCall(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	callID, err := req.RequireString("call_id")
	if err != nil {
		return mcp.NewToolResultError("call_id is required"), nil
	}

	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal is required"), nil
	}

	raw := req.GetStringSlice("questions", nil)
	if len(raw) == 0 {
		return mcp.NewToolResultError("questions is required"), nil
	}
	questions := make([][]string, len(raw))
	for i, q := range raw {
		text, answerType, ok := strings.Cut(q, ":")
		if !ok {
			answerType = "string"
		}
		questions[i] = []string{strings.TrimSpace(text), strings.TrimSpace(answerType)}
	}

	c := h.auth.GetClient()
	resp, err := c.AnalyzeCall(ctx, callID, bland.AnalyzeCallParams{
		Goal:      goal,
		Questions: questions,
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Analysis failed", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Analysis failed: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatAnalysis(questions, resp.Answers, resp.CreditsUsed)), nil
}

// === Batch Handlers ===

// HandleSendBatch handles the bland_send_batch tool.
func (h *Handlers) HandleSendBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	numbers := req.GetStringSlice("phone_numbers", nil)
	if len(numbers) == 0 {
		return mcp.NewToolResultError("phone_numbers is required"), nil
	}

	c := h.auth.GetClient()
	resp, err := c.SendBatchCalls(ctx, bland.SendBatchCallsParams{
		PhoneNumbers: numbers,
		Task:         req.GetString("task", ""),
		PathwayID:    req.GetString("pathway_id", ""),
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to send batch", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send batch: %s", resp.Message)), nil
	}

	text := fmt.Sprintf("Batch queued!\nBatch ID: %s\nCalls: %d", resp.BatchID, len(numbers))
	return mcp.NewToolResultText(text), nil
}

// === Pathway Handlers ===

// HandleListPathways handles the bland_list_pathways tool.
func (h *Handlers) HandleListPathways(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	limit := req.GetInt("limit", 20)
	if limit < 1 {
		limit = 20
	}

	c := h.auth.GetClient()
	resp, err := c.GetAllPathways(ctx, bland.ListPathwaysParams{Limit: limit})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list pathways", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list pathways: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatPathwayList(resp.Pathways)), nil
}

// HandlePathwayChat handles the bland_pathway_chat tool.
func (h *Handlers) HandlePathwayChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	chatID := req.GetString("chat_id", "")
	message := req.GetString("message", "")

	c := h.auth.GetClient()

	// Starting a new session requires a pathway.
	if chatID == "" {
		pathwayID := req.GetString("pathway_id", "")
		if pathwayID == "" {
			return mcp.NewToolResultError("pathway_id is required when chat_id is not set"), nil
		}
		created, err := c.CreatePathwayChat(ctx, pathwayID, "")
		if err != nil {
			return mcp.NewToolResultErrorFromErr("Failed to start chat", err), nil
		}
		if created.IsError() {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to start chat: %s", created.Message)), nil
		}
		chatID = created.ChatID
	}

	resp, err := c.SendPathwayChatMessage(ctx, chatID, message)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Chat failed", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Chat failed: %s", resp.Message)), nil
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Chat ID: %s", chatID))
	if resp.CurrentNodeID != "" {
		parts = append(parts, fmt.Sprintf("Node: %s", resp.CurrentNodeID))
	}
	parts = append(parts, "", resp.AssistantResponse)
	return mcp.NewToolResultText(strings.Join(parts, "\n")), nil
}

// === Account Handlers ===

// HandleListVoices handles the bland_list_voices tool.
func (h *Handlers) HandleListVoices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	c := h.auth.GetClient()
	resp, err := c.ListVoices(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list voices", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list voices: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatVoiceList(resp.Voices)), nil
}

// HandleListNumbers handles the bland_list_numbers tool.
func (h *Handlers) HandleListNumbers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !h.auth.IsAuthenticated() {
		return mcp.NewToolResultError("Not authenticated. Use bland_authenticate first."), nil
	}

	c := h.auth.GetClient()
	resp, err := c.ListInboundNumbers(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list numbers", err), nil
	}
	if resp.IsError() {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list numbers: %s", resp.Message)), nil
	}

	return mcp.NewToolResultText(FormatNumberList(resp.InboundNumbers)), nil
}
