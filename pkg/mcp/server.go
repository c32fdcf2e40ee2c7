package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

const (
	// ServerName is the name of the MCP server.
	ServerName = "bland-mcp"
	// ServerVersion is the version of the MCP server.
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with Bland-specific functionality.
type Server struct {
	mcpServer *server.MCPServer
	auth      *AuthState
	handlers  *Handlers
}

// NewServer creates a new Bland MCP server.
func NewServer() *Server {
	// Determine API URL
	apiURL := os.Getenv("BLAND_API_URL")
	if apiURL == "" {
		apiURL = bland.DefaultBaseURL
	}

	// Create authentication state
	auth := NewAuthState(apiURL)

	// Create handlers
	handlers := NewHandlers(auth)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		auth:      auth,
		handlers:  handlers,
	}

	// Register all tools
	s.registerTools()

	return s
}

// registerTools registers all Bland tools with the MCP server.
func (s *Server) registerTools() {
	tools := ToolDefinitions()

	for _, tool := range tools {
		switch tool.Name {
		// Authentication
		case "bland_authenticate":
			s.mcpServer.AddTool(tool, s.handlers.HandleAuthenticate)
		case "bland_status":
			s.mcpServer.AddTool(tool, s.handlers.HandleStatus)

		// Calls
		case "bland_send_call":
			s.mcpServer.AddTool(tool, s.handlers.HandleSendCall)
		case "bland_stop_call":
			s.mcpServer.AddTool(tool, s.handlers.HandleStopCall)
		case "bland_list_calls":
			s.mcpServer.AddTool(tool, s.handlers.HandleListCalls)
		case "bland_call_details":
			s.mcpServer.AddTool(tool, s.handlers.HandleCallDetails)
		case "bland_call_transcript":
			s.mcpServer.AddTool(tool, s.handlers.HandleCallTranscript)
		case "bland_analyze_call":
			s.mcpServer.AddTool(tool, s.handlers.HandleAnalyzeCall)

		// Batches
		case "bland_send_batch":
			s.mcpServer.AddTool(tool, s.handlers.HandleSendBatch)

		// Pathways
		case "bland_list_pathways":
			s.mcpServer.AddTool(tool, s.handlers.HandleListPathways)
		case "bland_pathway_chat":
			s.mcpServer.AddTool(tool, s.handlers.HandlePathwayChat)

		// Account
		case "bland_list_voices":
			s.mcpServer.AddTool(tool, s.handlers.HandleListVoices)
		case "bland_list_numbers":
			s.mcpServer.AddTool(tool, s.handlers.HandleListNumbers)
		}
	}
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeContext starts the MCP server on stdio with a context.
func (s *Server) ServeContext(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// GetMCPServer returns the underlying MCP server for testing.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// GetAuthState returns the authentication state for testing.
func (s *Server) GetAuthState() *AuthState {
	return s.auth
}
