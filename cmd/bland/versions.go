package main

import (
	"fmt"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	versionName        string
	versionDescription string
	versionGraphFile   string
)

func init() {
	pathwayCmd.AddCommand(versionCmd)
	versionCmd.AddCommand(versionCreateCmd)
	versionCmd.AddCommand(versionListCmd)
	versionCmd.AddCommand(versionGetCmd)
	versionCmd.AddCommand(versionPromoteCmd)
	versionCmd.AddCommand(versionDeleteCmd)

	versionCreateCmd.Flags().StringVar(&versionName, "name", "", "Version name")
	versionCreateCmd.Flags().StringVar(&versionDescription, "description", "", "Version description")
	versionCreateCmd.Flags().StringVar(&versionGraphFile, "file", "", "JSON file replacing the snapshotted graph")
	versionCreateCmd.MarkFlagRequired("name")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Manage saved pathway versions",
}

var versionCreateCmd = &cobra.Command{
	Use:   "create <pathway-id>",
	Short: "Snapshot a pathway into a named version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")
		graph := loadGraph(out, versionGraphFile)

		resp, err := getClient().CreatePathwayVersion(cmd.Context(), pathwayID, bland.CreatePathwayVersionParams{
			Name:        versionName,
			Description: versionDescription,
			Nodes:       graph.Nodes,
			Edges:       graph.Edges,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Version created\n")
			out.Field("version_id", resp.VersionID)
		}
		return nil
	},
}

var versionListCmd = &cobra.Command{
	Use:   "list <pathway-id>",
	Short: "List a pathway's saved versions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().GetPathwayVersions(cmd.Context(), pathwayID)
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Versions) == 0 {
			out.Println("No saved versions")
			return nil
		}

		rows := make([][]string, 0, len(resp.Versions))
		for _, v := range resp.Versions {
			live := ""
			if v.IsLive {
				live = "live"
			}
			rows = append(rows, []string{v.VersionID, v.Name, live, v.CreatedAt})
		}
		return out.Table([]string{"VERSION ID", "NAME", "LIVE", "CREATED"}, rows)
	},
}

var versionGetCmd = &cobra.Command{
	Use:   "get <pathway-id> <version-id>",
	Short: "Show one saved version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().GetPathwayVersion(cmd.Context(), pathwayID, args[1])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		out.Field("version_id", resp.VersionID)
		out.Field("name", resp.Name)
		out.Field("live", resp.IsLive)
		out.Field("nodes", len(resp.Nodes))
		out.Field("edges", len(resp.Edges))
		return nil
	},
}

var versionPromoteCmd = &cobra.Command{
	Use:   "promote <pathway-id> <version-id>",
	Short: "Make a saved version the live one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")

		resp, err := getClient().PromotePathwayVersion(cmd.Context(), pathwayID, args[1])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Version %s is now live\n", args[1])
		}
		return nil
	},
}

var versionDeleteCmd = &cobra.Command{
	Use:   "delete <pathway-id> <version-id>",
	Short: "Delete a saved version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		pathwayID := resolveID(out, args[0], "pathway")
		if !confirm(fmt.Sprintf("Delete version %s?", args[1])) {
			return nil
		}

		resp, err := getClient().DeletePathwayVersion(cmd.Context(), pathwayID, args[1])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Version %s deleted\n", args[1])
		}
		return nil
	},
}
