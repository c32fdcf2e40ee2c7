package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// mockRequest creates a CallToolRequest with the given arguments.
func mockRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// mockServer creates a test HTTP server that returns specified responses.
type mockServer struct {
	*httptest.Server
	responses map[string]mockResponse
}

type mockResponse struct {
	statusCode int
	body       any
}

func newMockServer() *mockServer {
	ms := &mockServer{
		responses: make(map[string]mockResponse),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		resp, ok := ms.responses[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.statusCode)
		json.NewEncoder(w).Encode(resp.body)
	}))

	return ms
}

func (ms *mockServer) setResponse(method, path string, statusCode int, body any) {
	ms.responses[method+" "+path] = mockResponse{
		statusCode: statusCode,
		body:       body,
	}
}

// authedHandlers returns handlers wired to the mock server with a key set.
func authedHandlers(ms *mockServer) *Handlers {
	auth := NewAuthState(ms.URL)
	auth.SetAuth("sk-test", "")
	return NewHandlers(auth)
}

func TestNewHandlers(t *testing.T) {
	t.Parallel()

	auth := &AuthState{}
	handlers := NewHandlers(auth)

	if handlers == nil {
		t.Fatal("NewHandlers returned nil")
	}
	if handlers.auth != auth {
		t.Error("handlers.auth not set correctly")
	}
}

func TestHandleAuthenticate(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("missing api_key", func(t *testing.T) {
		handlers := NewHandlers(NewAuthState("http://localhost"))

		result, err := handlers.HandleAuthenticate(ctx, mockRequest("bland_authenticate", nil))
		if err != nil {
			t.Fatalf("HandleAuthenticate() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing api_key")
		}
	})

	t.Run("accepted key", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("GET", "/v1/voices", 200, map[string]any{
			"status": "success",
			"voices": []map[string]any{{"voice_id": "v-1", "name": "mason"}},
		})

		auth := NewAuthState(ms.URL)
		handlers := NewHandlers(auth)

		result, err := handlers.HandleAuthenticate(ctx, mockRequest("bland_authenticate", map[string]any{
			"api_key": "sk-good",
			"org_id":  "org-1",
		}))
		if err != nil {
			t.Fatalf("HandleAuthenticate() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}
		if !auth.IsAuthenticated() {
			t.Error("auth state should hold the accepted key")
		}
		if !strings.Contains(getResultText(t, result), "org-1") {
			t.Errorf("expected org in result, got %q", getResultText(t, result))
		}
	})

	t.Run("rejected key clears state", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("GET", "/v1/voices", 401, map[string]string{
			"status": "error", "message": "invalid api key",
		})

		auth := NewAuthState(ms.URL)
		handlers := NewHandlers(auth)

		result, err := handlers.HandleAuthenticate(ctx, mockRequest("bland_authenticate", map[string]any{
			"api_key": "sk-bad",
		}))
		if err != nil {
			t.Fatalf("HandleAuthenticate() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for rejected key")
		}
		if auth.IsAuthenticated() {
			t.Error("rejected key should not be kept")
		}
	})
}

func TestHandleStatus(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("not authenticated", func(t *testing.T) {
		handlers := NewHandlers(NewAuthState("http://localhost"))

		result, err := handlers.HandleStatus(ctx, mockRequest("bland_status", nil))
		if err != nil {
			t.Fatalf("HandleStatus() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Not authenticated") {
			t.Errorf("expected 'Not authenticated', got %q", text)
		}
	})

	t.Run("authenticated and accepted", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("GET", "/v1/voices", 200, map[string]any{"status": "success"})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleStatus(ctx, mockRequest("bland_status", nil))
		if err != nil {
			t.Fatalf("HandleStatus() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Authenticated") {
			t.Errorf("expected 'Authenticated', got %q", text)
		}
	})

	t.Run("key rejected", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("GET", "/v1/voices", 401, map[string]string{
			"status": "error", "message": "invalid api key",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleStatus(ctx, mockRequest("bland_status", nil))
		if err != nil {
			t.Fatalf("HandleStatus() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "rejected") {
			t.Errorf("expected rejection notice, got %q", text)
		}
	})
}

func TestHandleSendCall(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("not authenticated", func(t *testing.T) {
		handlers := NewHandlers(NewAuthState("http://localhost"))

		result, err := handlers.HandleSendCall(ctx, mockRequest("bland_send_call", map[string]any{
			"phone_number": "+12025550101",
			"task":         "say hi",
		}))
		if err != nil {
			t.Fatalf("HandleSendCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result when not authenticated")
		}
	})

	t.Run("missing phone_number", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendCall(ctx, mockRequest("bland_send_call", map[string]any{
			"task": "say hi",
		}))
		if err != nil {
			t.Fatalf("HandleSendCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing phone_number")
		}
	})

	t.Run("queued call", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/calls", 200, map[string]any{
			"status":  "success",
			"call_id": "call-123",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendCall(ctx, mockRequest("bland_send_call", map[string]any{
			"phone_number": "+1 (202) 555-0101",
			"task":         "confirm the appointment",
			"record":       true,
		}))
		if err != nil {
			t.Fatalf("HandleSendCall() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "call-123") {
			t.Errorf("expected call ID in result, got %q", text)
		}
	})

	t.Run("invalid phone number rejected locally", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendCall(ctx, mockRequest("bland_send_call", map[string]any{
			"phone_number": "not-a-number",
			"task":         "say hi",
		}))
		if err != nil {
			t.Fatalf("HandleSendCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for malformed phone number")
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/calls", 402, map[string]string{
			"status": "error", "message": "insufficient balance",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendCall(ctx, mockRequest("bland_send_call", map[string]any{
			"phone_number": "+12025550101",
			"task":         "say hi",
		}))
		if err != nil {
			t.Fatalf("HandleSendCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for provider failure")
		}
		if !strings.Contains(getResultText(t, result), "insufficient balance") {
			t.Errorf("expected provider message, got %q", getResultText(t, result))
		}
	})
}

func TestHandleStopCall(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("missing call_id", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandleStopCall(ctx, mockRequest("bland_stop_call", nil))
		if err != nil {
			t.Fatalf("HandleStopCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing call_id")
		}
	})

	t.Run("stopped", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/calls/call-123/stop", 200, map[string]any{"status": "success"})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleStopCall(ctx, mockRequest("bland_stop_call", map[string]any{
			"call_id": "call-123",
		}))
		if err != nil {
			t.Fatalf("HandleStopCall() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}
		if !strings.Contains(getResultText(t, result), "call-123") {
			t.Errorf("expected call ID in result, got %q", getResultText(t, result))
		}
	})
}

func TestHandleListCalls(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/calls", 200, map[string]any{
		"status": "success",
		"count":  2,
		"calls": []map[string]any{
			{"call_id": "call-1", "to": "+12025550101", "status": "completed", "call_length": 1.5},
			{"call_id": "call-2", "to": "+12025550102", "queue_status": "queued"},
		},
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleListCalls(ctx, mockRequest("bland_list_calls", map[string]any{
		"limit": float64(10),
	}))
	if err != nil {
		t.Fatalf("HandleListCalls() error = %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(t, result))
	}

	text := getResultText(t, result)
	for _, want := range []string{"call-1", "call-2", "completed", "queued"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in result:\n%s", want, text)
		}
	}
}

func TestHandleCallDetails(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/calls/call-123", 200, map[string]any{
		"status":      "success",
		"call_id":     "call-123",
		"to":          "+12025550101",
		"from":        "+12025550199",
		"call_length": 2.5,
		"summary":     "Caller confirmed the appointment.",
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleCallDetails(ctx, mockRequest("bland_call_details", map[string]any{
		"call_id": "call-123",
	}))
	if err != nil {
		t.Fatalf("HandleCallDetails() error = %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("unexpected error result: %s", getResultText(t, result))
	}

	text := getResultText(t, result)
	for _, want := range []string{"call-123", "+12025550101", "Caller confirmed the appointment."} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in result:\n%s", want, text)
		}
	}
}

func TestHandleCallTranscript(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/calls/call-123/transcripts", 200, map[string]any{
		"status": "success",
		"transcripts": []map[string]any{
			{"id": 1, "user": "assistant", "text": "Hello!"},
			{"id": 2, "user": "user", "text": "Hi there."},
		},
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleCallTranscript(ctx, mockRequest("bland_call_transcript", map[string]any{
		"call_id": "call-123",
	}))
	if err != nil {
		t.Fatalf("HandleCallTranscript() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "assistant: Hello!") || !strings.Contains(text, "user: Hi there.") {
		t.Errorf("expected transcript lines in result:\n%s", text)
	}
}

func TestHandleAnalyzeCall(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("missing questions", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandleAnalyzeCall(ctx, mockRequest("bland_analyze_call", map[string]any{
			"call_id": "call-123",
			"goal":    "did they answer",
		}))
		if err != nil {
			t.Fatalf("HandleAnalyzeCall() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing questions")
		}
	})

	t.Run("answers paired with questions", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/calls/call-123/analyze", 200, map[string]any{
			"status":       "success",
			"answers":      []any{true, "the customer"},
			"credits_used": 2.0,
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleAnalyzeCall(ctx, mockRequest("bland_analyze_call", map[string]any{
			"call_id": "call-123",
			"goal":    "determine the outcome",
			"questions": []any{
				"Was the goal met?:boolean",
				"Who answered?",
			},
		}))
		if err != nil {
			t.Fatalf("HandleAnalyzeCall() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}

		text := getResultText(t, result)
		for _, want := range []string{"Q: Was the goal met?", "A: true", "Q: Who answered?", "A: the customer"} {
			if !strings.Contains(text, want) {
				t.Errorf("expected %q in result:\n%s", want, text)
			}
		}
	})
}

func TestHandleSendBatch(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("missing phone_numbers", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendBatch(ctx, mockRequest("bland_send_batch", map[string]any{
			"task": "say hi",
		}))
		if err != nil {
			t.Fatalf("HandleSendBatch() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing phone_numbers")
		}
	})

	t.Run("batch queued", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/calls/batch", 200, map[string]any{
			"status":   "success",
			"batch_id": "batch-9",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandleSendBatch(ctx, mockRequest("bland_send_batch", map[string]any{
			"phone_numbers": []any{"+12025550101", "+12025550102"},
			"task":          "announce the outage",
		}))
		if err != nil {
			t.Fatalf("HandleSendBatch() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "batch-9") || !strings.Contains(text, "Calls: 2") {
			t.Errorf("expected batch summary in result:\n%s", text)
		}
	})
}

func TestHandleListPathways(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/pathways", 200, map[string]any{
		"status": "success",
		"pathways": []map[string]any{
			{"pathway_id": "pw-1", "name": "Appointment booking"},
		},
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleListPathways(ctx, mockRequest("bland_list_pathways", nil))
	if err != nil {
		t.Fatalf("HandleListPathways() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "pw-1") || !strings.Contains(text, "Appointment booking") {
		t.Errorf("expected pathway in result:\n%s", text)
	}
}

func TestHandlePathwayChat(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	t.Run("requires pathway_id without chat_id", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		handlers := authedHandlers(ms)

		result, err := handlers.HandlePathwayChat(ctx, mockRequest("bland_pathway_chat", map[string]any{
			"message": "hello",
		}))
		if err != nil {
			t.Fatalf("HandlePathwayChat() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result without pathway_id or chat_id")
		}
	})

	t.Run("new session", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/pathway/chat/create", 200, map[string]any{
			"status":  "success",
			"chat_id": "chat-1",
		})
		ms.setResponse("POST", "/v1/pathway/chat/chat-1", 200, map[string]any{
			"status":             "success",
			"chat_id":            "chat-1",
			"assistant_response": "Hi! When would you like to book?",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandlePathwayChat(ctx, mockRequest("bland_pathway_chat", map[string]any{
			"pathway_id": "pw-1",
			"message":    "hello",
		}))
		if err != nil {
			t.Fatalf("HandlePathwayChat() error = %v", err)
		}
		if isErrorResult(result) {
			t.Fatalf("unexpected error result: %s", getResultText(t, result))
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "chat-1") {
			t.Errorf("expected chat ID in result:\n%s", text)
		}
		if !strings.Contains(text, "Hi! When would you like to book?") {
			t.Errorf("expected assistant response in result:\n%s", text)
		}
	})

	t.Run("continue session", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()
		ms.setResponse("POST", "/v1/pathway/chat/chat-1", 200, map[string]any{
			"status":             "success",
			"chat_id":            "chat-1",
			"assistant_response": "Tuesday works.",
			"current_node_id":    "node-7",
		})

		handlers := authedHandlers(ms)

		result, err := handlers.HandlePathwayChat(ctx, mockRequest("bland_pathway_chat", map[string]any{
			"chat_id": "chat-1",
			"message": "how about tuesday",
		}))
		if err != nil {
			t.Fatalf("HandlePathwayChat() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Tuesday works.") || !strings.Contains(text, "node-7") {
			t.Errorf("expected reply and node in result:\n%s", text)
		}
	})
}

func TestHandleListVoices(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/voices", 200, map[string]any{
		"status": "success",
		"voices": []map[string]any{
			{"voice_id": "v-1", "name": "mason", "language": "en-US"},
		},
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleListVoices(ctx, mockRequest("bland_list_voices", nil))
	if err != nil {
		t.Fatalf("HandleListVoices() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "mason") {
		t.Errorf("expected voice in result:\n%s", text)
	}
}

func TestHandleListNumbers(t *testing.T) {
	ctx := context.Background()
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_ORG_ID", "")

	ms := newMockServer()
	defer ms.Close()
	ms.setResponse("GET", "/v1/phone/inbound", 200, map[string]any{
		"status": "success",
		"inbound_numbers": []map[string]any{
			{"phone_number": "+12025550101", "pathway_id": "pw-1"},
		},
	})

	handlers := authedHandlers(ms)

	result, err := handlers.HandleListNumbers(ctx, mockRequest("bland_list_numbers", nil))
	if err != nil {
		t.Fatalf("HandleListNumbers() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "+12025550101") {
		t.Errorf("expected number in result:\n%s", text)
	}
}

func getResultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("result is nil")
	}

	for _, content := range result.Content {
		if text, ok := content.(mcplib.TextContent); ok {
			return text.Text
		}
	}

	return fmt.Sprintf("unexpected content type: %T", result.Content)
}

func isErrorResult(result *mcplib.CallToolResult) bool {
	if result == nil {
		return false
	}
	return result.IsError
}
