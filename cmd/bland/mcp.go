package main

import (
	"github.com/spf13/cobra"

	"github.com/kelmorin/bland-cli/pkg/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run MCP (Model Context Protocol) server",
	Long: `Run an MCP server that exposes voice-call operations to AI assistants.

The server communicates over stdio using the Model Context Protocol,
allowing AI tools to place and inspect calls programmatically.

Available tools:
  Authentication:
    bland_authenticate   - Set the API key for the session
    bland_status         - Check authentication status

  Calls:
    bland_send_call      - Place an outbound AI phone call
    bland_stop_call      - Stop an in-progress call
    bland_list_calls     - List past and active calls
    bland_call_details   - Get one call's status and summary
    bland_call_transcript - Get a call's transcript
    bland_analyze_call   - Run AI analysis over a completed call

  Batches:
    bland_send_batch     - Call a list of numbers with one prompt

  Pathways:
    bland_list_pathways  - List conversation pathways
    bland_pathway_chat   - Test a pathway over text chat

  Account:
    bland_list_voices    - List available voices
    bland_list_numbers   - List inbound phone numbers

Environment variables:
  BLAND_API_URL   - API endpoint (default: https://api.bland.ai)
  BLAND_API_KEY   - Pre-configured API key (skip bland_authenticate)
  BLAND_ORG_ID    - Organization ID for enterprise accounts

Example MCP configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "bland": {
        "command": "bland",
        "args": ["mcp"],
        "env": {
          "BLAND_API_KEY": "your-api-key"
        }
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcp.NewServer()
		return srv.Serve()
	},
}
