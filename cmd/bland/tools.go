package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	toolFile string
	toolPage int
)

func init() {
	rootCmd.AddCommand(toolCmd)
	toolCmd.AddCommand(toolCreateCmd)
	toolCmd.AddCommand(toolUpdateCmd)
	toolCmd.AddCommand(toolDeleteCmd)
	toolCmd.AddCommand(toolGetCmd)
	toolCmd.AddCommand(toolListCmd)

	toolCreateCmd.Flags().StringVar(&toolFile, "file", "", "JSON file describing the tool")
	toolCreateCmd.MarkFlagRequired("file")
	toolUpdateCmd.Flags().StringVar(&toolFile, "file", "", "JSON file with the fields to change")
	toolUpdateCmd.MarkFlagRequired("file")

	toolListCmd.Flags().IntVar(&toolPage, "page", 0, "Page number, starting at 1")
}

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Manage custom tools the agent can invoke mid-call",
}

func loadToolFile(v any, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tool file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse tool file: %w", err)
	}
	return nil
}

var toolCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a custom tool from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		var p bland.CreateCustomToolParams
		if err := loadToolFile(&p, toolFile); err != nil {
			fail(out, err)
		}

		resp, err := getClient().CreateCustomTool(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Tool created\n")
			out.Field("tool_id", resp.ToolID)
		}
		return nil
	},
}

var toolUpdateCmd = &cobra.Command{
	Use:   "update <tool-id>",
	Short: "Update a custom tool from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		var p bland.UpdateCustomToolParams
		if err := loadToolFile(&p, toolFile); err != nil {
			fail(out, err)
		}

		resp, err := getClient().UpdateCustomTool(cmd.Context(), args[0], p)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Tool %s updated\n", args[0])
		}
		return nil
	},
}

var toolDeleteCmd = &cobra.Command{
	Use:   "delete <tool-id>",
	Short: "Delete a custom tool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Delete tool %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteCustomTool(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Tool %s deleted\n", args[0])
		}
		return nil
	},
}

var toolGetCmd = &cobra.Command{
	Use:   "get <tool-id>",
	Short: "Show one custom tool's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetCustomToolDetails(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		out.Field("tool_id", resp.ID)
		out.Field("name", resp.Name)
		out.Field("endpoint", resp.Method+" "+resp.Endpoint)
		for _, p := range resp.Parameters {
			required := ""
			if p.Required {
				required = " (required)"
			}
			out.Printf("  %s %s%s\n", p.Name, p.Type, required)
		}
		return nil
	},
}

var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's custom tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListCustomTools(cmd.Context(), bland.ListToolsParams{
			Page:  toolPage,
			Limit: flagLimit,
		})
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Tools) == 0 {
			out.Println("No custom tools")
			return nil
		}

		rows := make([][]string, 0, len(resp.Tools))
		for _, t := range resp.Tools {
			rows = append(rows, []string{t.ID, t.Name, t.Method, t.Endpoint})
		}
		return out.Table([]string{"TOOL ID", "NAME", "METHOD", "ENDPOINT"}, rows)
	},
}
