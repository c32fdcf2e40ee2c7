package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelmorin/bland-cli/pkg/bland"
	blandctx "github.com/kelmorin/bland-cli/pkg/context"
	"github.com/kelmorin/bland-cli/pkg/output"
	"github.com/spf13/cobra"
)

var (
	pathwayName        string
	pathwayDescription string
	pathwayGraphFile   string
	pathwayFolder      string
	pathwayOffset      int
)

func init() {
	rootCmd.AddCommand(pathwayCmd)
	pathwayCmd.AddCommand(pathwayCreateCmd)
	pathwayCmd.AddCommand(pathwayUpdateCmd)
	pathwayCmd.AddCommand(pathwayDeleteCmd)
	pathwayCmd.AddCommand(pathwayGetCmd)
	pathwayCmd.AddCommand(pathwayListCmd)
	pathwayCmd.AddCommand(pathwayMoveCmd)

	pathwayCreateCmd.Flags().StringVar(&pathwayName, "name", "", "Pathway name")
	pathwayCreateCmd.Flags().StringVar(&pathwayDescription, "description", "", "Pathway description")
	pathwayCreateCmd.Flags().StringVar(&pathwayGraphFile, "file", "", "JSON file holding the node/edge graph")
	pathwayCreateCmd.MarkFlagRequired("name")
	pathwayCreateCmd.MarkFlagRequired("file")

	pathwayUpdateCmd.Flags().StringVar(&pathwayName, "name", "", "New pathway name")
	pathwayUpdateCmd.Flags().StringVar(&pathwayDescription, "description", "", "New pathway description")
	pathwayUpdateCmd.Flags().StringVar(&pathwayGraphFile, "file", "", "JSON file holding the replacement graph")

	pathwayListCmd.Flags().IntVar(&pathwayOffset, "offset", 0, "Skip the first N pathways")

	pathwayMoveCmd.Flags().StringVar(&pathwayFolder, "folder", "", "Destination folder ID, empty for root")
}

var pathwayCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Manage conversation pathways",
}

// pathwayGraph is the on-disk shape accepted by --file.
type pathwayGraph struct {
	Nodes []bland.Node `json:"nodes"`
	Edges []bland.Edge `json:"edges"`
}

func loadGraph(out *output.Printer, path string) pathwayGraph {
	var graph pathwayGraph
	if path == "" {
		return graph
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fail(out, fmt.Errorf("read graph file: %w", err))
	}
	if err := json.Unmarshal(data, &graph); err != nil {
		fail(out, fmt.Errorf("parse graph file: %w", err))
	}
	return graph
}

var pathwayCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pathway from a graph file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		graph := loadGraph(out, pathwayGraphFile)

		resp, err := getClient().CreatePathway(cmd.Context(), bland.CreatePathwayParams{
			Name:        pathwayName,
			Description: pathwayDescription,
			Nodes:       graph.Nodes,
			Edges:       graph.Edges,
		})
		if err != nil {
			fail(out, err)
		}
		if resp.PathwayID != "" {
			blandctx.Set(resp.PathwayID, "pathway")
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Pathway created\n")
			out.Field("pathway_id", resp.PathwayID)
		}
		return nil
	},
}

var pathwayUpdateCmd = &cobra.Command{
	Use:   "update <pathway-id>",
	Short: "Update a pathway's name, description, or graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")
		graph := loadGraph(out, pathwayGraphFile)

		resp, err := getClient().UpdatePathway(cmd.Context(), pathwayID, bland.UpdatePathwayParams{
			Name:        pathwayName,
			Description: pathwayDescription,
			Nodes:       graph.Nodes,
			Edges:       graph.Edges,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Pathway %s updated\n", pathwayID)
		}
		return nil
	},
}

var pathwayDeleteCmd = &cobra.Command{
	Use:   "delete <pathway-id>",
	Short: "Delete a pathway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")
		if !confirm(fmt.Sprintf("Delete pathway %s?", pathwayID)) {
			return nil
		}

		resp, err := getClient().DeletePathway(cmd.Context(), pathwayID)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Pathway %s deleted\n", pathwayID)
		}
		return nil
	},
}

var pathwayGetCmd = &cobra.Command{
	Use:   "get <pathway-id>",
	Short: "Show a pathway's graph and metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().GetPathwayInfo(cmd.Context(), pathwayID)
		if err != nil {
			fail(out, err)
		}
		blandctx.Set(pathwayID, "pathway")
		if !finish(out, &resp.APIResponse) {
			return nil
		}

		out.Field("pathway_id", resp.PathwayID)
		out.Field("name", resp.Name)
		if resp.Description != "" {
			out.Field("description", resp.Description)
		}
		out.Field("nodes", len(resp.Nodes))
		out.Field("edges", len(resp.Edges))
		return nil
	},
}

var pathwayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's pathways",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		p := bland.ListPathwaysParams{Limit: flagLimit}
		if cmd.Flags().Changed("offset") {
			p.Offset = &pathwayOffset
		}

		resp, err := getClient().GetAllPathways(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Pathways) == 0 {
			out.Println("No pathways found")
			return nil
		}

		rows := make([][]string, 0, len(resp.Pathways))
		for _, pw := range resp.Pathways {
			rows = append(rows, []string{pw.PathwayID, pw.Name, pw.FolderID, pw.UpdatedAt})
		}
		return out.Table([]string{"PATHWAY ID", "NAME", "FOLDER", "UPDATED"}, rows)
	},
}

var pathwayMoveCmd = &cobra.Command{
	Use:   "move <pathway-id>",
	Short: "Move a pathway into a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().MovePathway(cmd.Context(), pathwayID, pathwayFolder)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Pathway %s moved\n", pathwayID)
		}
		return nil
	},
}
