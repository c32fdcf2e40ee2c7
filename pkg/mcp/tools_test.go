package mcp

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func TestToolDefinitions(t *testing.T) {
	t.Parallel()

	tools := ToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("ToolDefinitions() returned empty slice")
	}

	// Expected tool names
	expectedTools := []string{
		"bland_authenticate",
		"bland_status",
		"bland_send_call",
		"bland_stop_call",
		"bland_list_calls",
		"bland_call_details",
		"bland_call_transcript",
		"bland_analyze_call",
		"bland_send_batch",
		"bland_list_pathways",
		"bland_pathway_chat",
		"bland_list_voices",
		"bland_list_numbers",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("ToolDefinitions() returned %d tools, want %d", len(tools), len(expectedTools))
	}

	// Create map of returned tools
	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check each expected tool exists
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("missing expected tool: %s", name)
		}
	}
}

func TestToolDefinitions_ToolProperties(t *testing.T) {
	t.Parallel()

	tools := ToolDefinitions()
	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	tests := []struct {
		name           string
		requiredParams []string
		optionalParams []string
	}{
		{
			name:           "bland_authenticate",
			requiredParams: []string{"api_key"},
			optionalParams: []string{"org_id"},
		},
		{
			name:           "bland_status",
			requiredParams: []string{},
			optionalParams: []string{},
		},
		{
			name:           "bland_send_call",
			requiredParams: []string{"phone_number"},
			optionalParams: []string{"task", "pathway_id", "voice", "model", "first_sentence", "max_duration", "temperature", "record"},
		},
		{
			name:           "bland_stop_call",
			requiredParams: []string{"call_id"},
			optionalParams: []string{},
		},
		{
			name:           "bland_list_calls",
			requiredParams: []string{},
			optionalParams: []string{"limit", "to_number", "batch_id"},
		},
		{
			name:           "bland_call_details",
			requiredParams: []string{"call_id"},
			optionalParams: []string{},
		},
		{
			name:           "bland_call_transcript",
			requiredParams: []string{"call_id"},
			optionalParams: []string{},
		},
		{
			name:           "bland_analyze_call",
			requiredParams: []string{"call_id", "goal", "questions"},
			optionalParams: []string{},
		},
		{
			name:           "bland_send_batch",
			requiredParams: []string{"phone_numbers"},
			optionalParams: []string{"task", "pathway_id"},
		},
		{
			name:           "bland_list_pathways",
			requiredParams: []string{},
			optionalParams: []string{"limit"},
		},
		{
			name:           "bland_pathway_chat",
			requiredParams: []string{},
			optionalParams: []string{"pathway_id", "chat_id", "message"},
		},
		{
			name:           "bland_list_voices",
			requiredParams: []string{},
			optionalParams: []string{},
		},
		{
			name:           "bland_list_numbers",
			requiredParams: []string{},
			optionalParams: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := toolMap[tt.name]
			if !ok {
				t.Fatalf("tool %s not found", tt.name)
			}

			if tool.Description == "" {
				t.Errorf("tool %s: description should not be empty", tt.name)
			}

			// Check required params
			requiredSet := make(map[string]bool)
			for _, req := range tool.InputSchema.Required {
				requiredSet[req] = true
			}
			for _, param := range tt.requiredParams {
				if !requiredSet[param] {
					t.Errorf("tool %s: param %q should be required", tt.name, param)
				}
			}
			if len(tool.InputSchema.Required) != len(tt.requiredParams) {
				t.Errorf("tool %s: required = %v, want %v", tt.name, tool.InputSchema.Required, tt.requiredParams)
			}

			// Check all declared params exist in the schema
			if tool.InputSchema.Properties != nil {
				for _, param := range append(tt.requiredParams, tt.optionalParams...) {
					if _, ok := tool.InputSchema.Properties[param]; !ok {
						t.Errorf("tool %s: expected param %q not found in properties", tt.name, param)
					}
				}
			} else if len(tt.requiredParams) > 0 || len(tt.optionalParams) > 0 {
				t.Errorf("tool %s: expected properties but got nil", tt.name)
			}

			// Optional params must not appear in the required list
			for _, param := range tt.optionalParams {
				if requiredSet[param] {
					t.Errorf("tool %s: param %q should not be required", tt.name, param)
				}
			}
		})
	}
}

func TestToolSendCall(t *testing.T) {
	t.Parallel()

	tool := toolSendCall()

	if tool.Name != "bland_send_call" {
		t.Errorf("tool.Name = %q, want %q", tool.Name, "bland_send_call")
	}

	if tool.InputSchema.Properties == nil {
		t.Fatal("tool.InputSchema.Properties is nil")
	}

	// phone_number is the only required param; task and pathway_id are
	// alternatives enforced at call time.
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "phone_number" {
		t.Errorf("required = %v, want [phone_number]", tool.InputSchema.Required)
	}

	if _, ok := tool.InputSchema.Properties["task"]; !ok {
		t.Error("task property not found")
	}
	if _, ok := tool.InputSchema.Properties["pathway_id"]; !ok {
		t.Error("pathway_id property not found")
	}
}

func TestToolAnalyzeCall(t *testing.T) {
	t.Parallel()

	tool := toolAnalyzeCall()

	if tool.Name != "bland_analyze_call" {
		t.Errorf("tool.Name = %q, want %q", tool.Name, "bland_analyze_call")
	}

	for _, param := range []string{"call_id", "goal", "questions"} {
		found := false
		for _, req := range tool.InputSchema.Required {
			if req == param {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s should be required", param)
		}
	}
}

func TestToolPathwayChat(t *testing.T) {
	t.Parallel()

	tool := toolPathwayChat()

	if tool.Name != "bland_pathway_chat" {
		t.Errorf("tool.Name = %q, want %q", tool.Name, "bland_pathway_chat")
	}

	// Neither pathway_id nor chat_id is schema-required; the handler
	// enforces that one of them is present.
	if len(tool.InputSchema.Required) != 0 {
		t.Errorf("bland_pathway_chat should have no required params, got %v", tool.InputSchema.Required)
	}
}
