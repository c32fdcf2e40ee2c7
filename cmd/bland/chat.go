package main

import (
	blandctx "github.com/kelmorin/bland-cli/pkg/context"
	"github.com/spf13/cobra"
)

var chatStartNode string

func init() {
	pathwayCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatCreateCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)

	chatCreateCmd.Flags().StringVar(&chatStartNode, "start-node", "", "Node to start from instead of the pathway entry")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Test a pathway over text chat instead of a call",
}

var chatCreateCmd = &cobra.Command{
	Use:   "create <pathway-id>",
	Short: "Open a chat session against a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().CreatePathwayChat(cmd.Context(), pathwayID, chatStartNode)
		if err != nil {
			fail(out, err)
		}
		if resp.ChatID != "" {
			blandctx.Set(resp.ChatID, "chat")
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Chat session opened\n")
			out.Field("chat_id", resp.ChatID)
		}
		return nil
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <chat-id> [message]",
	Short: "Send a message into a chat session",
	Long: `Send one user message into a chat session. With no message the
pathway advances to its first prompt.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		chatID := resolveID(out, args[0], "chat")

		message := ""
		if len(args) == 2 {
			message = args[1]
		}

		resp, err := getClient().SendPathwayChatMessage(cmd.Context(), chatID, message)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Println(resp.AssistantResponse)
			if resp.CurrentNodeID != "" {
				out.Field("node", resp.CurrentNodeID)
			}
		}
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history <chat-id>",
	Short: "Show a chat session's transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		chatID := resolveID(out, args[0], "chat")

		resp, err := getClient().GetPathwayChatHistory(cmd.Context(), chatID)
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		for _, m := range resp.Messages {
			out.Printf("%-10s %s\n", m.Role+":", m.Content)
		}
		return nil
	},
}
