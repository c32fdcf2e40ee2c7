package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolDefinitions returns all tool definitions for the Bland MCP server.
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		// Authentication tools
		toolAuthenticate(),
		toolStatus(),

		// Call tools
		toolSendCall(),
		toolStopCall(),
		toolListCalls(),
		toolCallDetails(),
		toolCallTranscript(),
		toolAnalyzeCall(),

		// Batch tools
		toolSendBatch(),

		// Pathway tools
		toolListPathways(),
		toolPathwayChat(),

		// Account tools
		toolListVoices(),
		toolListNumbers(),
	}
}

// === Authentication Tools ===

func toolAuthenticate() mcp.Tool {
	return mcp.NewTool("bland_authenticate",
		mcp.WithDescription("Set the Bland API key for this session. Not needed when BLAND_API_KEY is set in the environment."),
		mcp.WithString("api_key",
			mcp.Description("Bland API key"),
			mcp.Required(),
		),
		mcp.WithString("org_id",
			mcp.Description("Organization ID for enterprise accounts (optional)"),
		),
	)
}

func toolStatus() mcp.Tool {
	return mcp.NewTool("bland_status",
		mcp.WithDescription("Check whether an API key is configured and accepted by the API"),
	)
}

// === Call Tools ===

func toolSendCall() mcp.Tool {
	return mcp.NewTool("bland_send_call",
		mcp.WithDescription("Place an outbound AI phone call. Provide either a task prompt or a pathway_id."),
		mcp.WithString("phone_number",
			mcp.Description("Number to call in E.164 format, e.g. +12025550101"),
			mcp.Required(),
		),
		mcp.WithString("task",
			mcp.Description("Prompt describing what the agent should do on the call"),
		),
		mcp.WithString("pathway_id",
			mcp.Description("Conversation pathway to follow instead of a task prompt"),
		),
		mcp.WithString("voice",
			mcp.Description("Voice preset or cloned voice ID (default: mason)"),
		),
		mcp.WithString("model",
			mcp.Description("Model to use (default: enhanced)"),
			mcp.Enum("base", "turbo", "enhanced"),
		),
		mcp.WithString("first_sentence",
			mcp.Description("Opening line spoken by the agent"),
		),
		mcp.WithNumber("max_duration",
			mcp.Description("Maximum call length in minutes (default 30)"),
		),
		mcp.WithNumber("temperature",
			mcp.Description("Model temperature between 0 and 1 (default 0.7)"),
		),
		mcp.WithBoolean("record",
			mcp.Description("Record the call"),
		),
	)
}

func toolStopCall() mcp.Tool {
	return mcp.NewTool("bland_stop_call",
		mcp.WithDescription("Stop an in-progress call"),
		mcp.WithString("call_id",
			mcp.Description("ID of the call to stop"),
			mcp.Required(),
		),
	)
}

func toolListCalls() mcp.Tool {
	return mcp.NewTool("bland_list_calls",
		mcp.WithDescription("List past and active calls, most recent first"),
		mcp.WithNumber("limit",
			mcp.Description("Number of calls to return (default 20, max 100)"),
		),
		mcp.WithString("to_number",
			mcp.Description("Filter by callee number"),
		),
		mcp.WithString("batch_id",
			mcp.Description("Filter by batch"),
		),
	)
}

func toolCallDetails() mcp.Tool {
	return mcp.NewTool("bland_call_details",
		mcp.WithDescription("Get one call's status, metadata, and summary"),
		mcp.WithString("call_id",
			mcp.Description("ID of the call"),
			mcp.Required(),
		),
	)
}

func toolCallTranscript() mcp.Tool {
	return mcp.NewTool("bland_call_transcript",
		mcp.WithDescription("Get the aligned transcript of a call"),
		mcp.WithString("call_id",
			mcp.Description("ID of the call"),
			mcp.Required(),
		),
	)
}

func toolAnalyzeCall() mcp.Tool {
	return mcp.NewTool("bland_analyze_call",
		mcp.WithDescription("Run an AI analysis over a completed call, answering questions about what happened"),
		mcp.WithString("call_id",
			mcp.Description("ID of the completed call"),
			mcp.Required(),
		),
		mcp.WithString("goal",
			mcp.Description("What the analysis should determine"),
			mcp.Required(),
		),
		mcp.WithArray("questions",
			mcp.Description("Questions to answer, each as 'question text:answer_type' where answer_type is string, boolean, or number"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// === Batch Tools ===

func toolSendBatch() mcp.Tool {
	return mcp.NewTool("bland_send_batch",
		mcp.WithDescription("Place the same AI call to a list of phone numbers"),
		mcp.WithArray("phone_numbers",
			mcp.Description("Numbers to call in E.164 format"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("task",
			mcp.Description("Prompt shared by every call in the batch"),
		),
		mcp.WithString("pathway_id",
			mcp.Description("Conversation pathway to follow instead of a task prompt"),
		),
	)
}

// === Pathway Tools ===

func toolListPathways() mcp.Tool {
	return mcp.NewTool("bland_list_pathways",
		mcp.WithDescription("List the account's conversation pathways"),
		mcp.WithNumber("limit",
			mcp.Description("Number of pathways to return (default 20)"),
		),
	)
}

func toolPathwayChat() mcp.Tool {
	return mcp.NewTool("bland_pathway_chat",
		mcp.WithDescription(`Test a pathway over text chat without placing a call.

Omit chat_id to open a new session against pathway_id; the response
includes the chat_id to pass on subsequent turns.`),
		mcp.WithString("pathway_id",
			mcp.Description("Pathway to chat with (required when starting a session)"),
		),
		mcp.WithString("chat_id",
			mcp.Description("Existing chat session to continue"),
		),
		mcp.WithString("message",
			mcp.Description("User message; empty advances the pathway to its first prompt"),
		),
	)
}

// === Account Tools ===

func toolListVoices() mcp.Tool {
	return mcp.NewTool("bland_list_voices",
		mcp.WithDescription("List voices available for calls"),
	)
}

func toolListNumbers() mcp.Tool {
	return mcp.NewTool("bland_list_numbers",
		mcp.WithDescription("List the account's inbound phone numbers"),
	)
}
