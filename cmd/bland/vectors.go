package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var vectorDataFile string

func init() {
	rootCmd.AddCommand(vectorCmd)
	vectorCmd.AddCommand(vectorCreateCmd)
	vectorCmd.AddCommand(vectorUpdateCmd)
	vectorCmd.AddCommand(vectorGetCmd)
	vectorCmd.AddCommand(vectorDeleteCmd)

	vectorCreateCmd.Flags().StringVar(&vectorDataFile, "file", "", "Text file holding the document body")
	vectorCreateCmd.MarkFlagRequired("file")
	vectorUpdateCmd.Flags().StringVar(&vectorDataFile, "file", "", "Text file holding the replacement body")
}

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Manage knowledge-base documents agents can consult",
}

func readVectorData(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document file: %w", err)
	}
	return string(data), nil
}

var vectorCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Upload a knowledge-base document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		data, err := readVectorData(vectorDataFile)
		if err != nil {
			fail(out, err)
		}

		resp, err := getClient().CreateVector(cmd.Context(), args[0], data)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Document uploaded\n")
			out.Field("vector_id", resp.VectorID)
		}
		return nil
	},
}

var vectorUpdateCmd = &cobra.Command{
	Use:   "update <vector-id> [name]",
	Short: "Rename a document or replace its body",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		data, err := readVectorData(vectorDataFile)
		if err != nil {
			fail(out, err)
		}

		resp, err := getClient().UpdateVector(cmd.Context(), args[0], name, data)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Document %s updated\n", args[0])
		}
		return nil
	},
}

var vectorGetCmd = &cobra.Command{
	Use:   "get <vector-id>",
	Short: "Show a document's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetVectorDetails(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		out.Field("vector_id", resp.VectorID)
		out.Field("name", resp.Name)
		if resp.Description != "" {
			out.Field("description", resp.Description)
		}
		out.Field("updated", resp.UpdatedAt)
		return nil
	},
}

var vectorDeleteCmd = &cobra.Command{
	Use:   "delete <vector-id>",
	Short: "Delete a knowledge-base document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Delete document %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteVector(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Document %s deleted\n", args[0])
		}
		return nil
	},
}
