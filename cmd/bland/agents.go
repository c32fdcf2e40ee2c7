package main

import (
	"fmt"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	agentFile string

	authorizeCall   string
	authorizeAction string
	authorizeTarget string
)

func init() {
	rootCmd.AddCommand(agentCmd)
	agentCmd.AddCommand(agentCreateCmd)
	agentCmd.AddCommand(agentUpdateCmd)
	agentCmd.AddCommand(agentDeleteCmd)
	agentCmd.AddCommand(agentListCmd)
	agentCmd.AddCommand(agentAuthorizeCmd)

	agentCreateCmd.Flags().StringVar(&agentFile, "file", "", "JSON file describing the agent")
	agentCreateCmd.MarkFlagRequired("file")
	agentUpdateCmd.Flags().StringVar(&agentFile, "file", "", "JSON file with the fields to change")
	agentUpdateCmd.MarkFlagRequired("file")

	agentAuthorizeCmd.Flags().StringVar(&authorizeCall, "call", "", "Call requesting the action")
	agentAuthorizeCmd.Flags().StringVar(&authorizeAction, "action", "", "Action to authorize")
	agentAuthorizeCmd.Flags().StringVar(&authorizeTarget, "target", "", "URL the agent may act on")
	agentAuthorizeCmd.MarkFlagRequired("call")
	agentAuthorizeCmd.MarkFlagRequired("action")
	agentAuthorizeCmd.MarkFlagRequired("target")
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage web agents that browse on the caller's behalf",
}

var agentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a web agent from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		var p bland.CreateWebAgentParams
		if err := loadToolFile(&p, agentFile); err != nil {
			fail(out, err)
		}

		resp, err := getClient().CreateWebAgent(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Agent created\n")
			out.Field("agent_id", resp.AgentID)
		}
		return nil
	},
}

var agentUpdateCmd = &cobra.Command{
	Use:   "update <agent-id>",
	Short: "Update a web agent from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		var p bland.UpdateWebAgentParams
		if err := loadToolFile(&p, agentFile); err != nil {
			fail(out, err)
		}

		resp, err := getClient().UpdateWebAgent(cmd.Context(), args[0], p)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Agent %s updated\n", args[0])
		}
		return nil
	},
}

var agentDeleteCmd = &cobra.Command{
	Use:   "delete <agent-id>",
	Short: "Delete a web agent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Delete agent %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteWebAgent(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Agent %s deleted\n", args[0])
		}
		return nil
	},
}

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's web agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListWebAgents(cmd.Context(), bland.ListWebAgentsParams{Limit: flagLimit})
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Agents) == 0 {
			out.Println("No web agents")
			return nil
		}

		rows := make([][]string, 0, len(resp.Agents))
		for _, a := range resp.Agents {
			rows = append(rows, []string{a.AgentID, a.Name, a.WebsiteURL})
		}
		return out.Table([]string{"AGENT ID", "NAME", "WEBSITE"}, rows)
	},
}

var agentAuthorizeCmd = &cobra.Command{
	Use:   "authorize <agent-id>",
	Short: "Authorize an agent action requested mid-call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().AuthorizeWebAgent(cmd.Context(), args[0], bland.AuthorizeWebAgentParams{
			CallID:    authorizeCall,
			Action:    authorizeAction,
			TargetURL: authorizeTarget,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Action authorized\n")
			out.Field("authorization_id", resp.AuthorizationID)
		}
		return nil
	},
}
