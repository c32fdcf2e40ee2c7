package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var folderDescription string

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderUpdateCmd)
	folderCmd.AddCommand(folderDeleteCmd)
	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderPathwaysCmd)

	folderCreateCmd.Flags().StringVar(&folderDescription, "description", "", "Folder description")
	folderUpdateCmd.Flags().StringVar(&folderDescription, "description", "", "New folder description")
}

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Organize pathways into folders",
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a pathway folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().CreateFolder(cmd.Context(), args[0], folderDescription)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Folder created\n")
			out.Field("folder_id", resp.FolderID)
		}
		return nil
	},
}

var folderUpdateCmd = &cobra.Command{
	Use:   "update <folder-id> [name]",
	Short: "Rename a folder or change its description",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		name := ""
		if len(args) == 2 {
			name = args[1]
		}

		resp, err := getClient().UpdateFolder(cmd.Context(), args[0], name, folderDescription)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Folder %s updated\n", args[0])
		}
		return nil
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <folder-id>",
	Short: "Delete a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Delete folder %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteFolder(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Folder %s deleted\n", args[0])
		}
		return nil
	},
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pathway folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetAllFolders(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Folders) == 0 {
			out.Println("No folders found")
			return nil
		}

		rows := make([][]string, 0, len(resp.Folders))
		for _, f := range resp.Folders {
			rows = append(rows, []string{f.FolderID, f.Name, f.Description})
		}
		return out.Table([]string{"FOLDER ID", "NAME", "DESCRIPTION"}, rows)
	},
}

var folderPathwaysCmd = &cobra.Command{
	Use:   "pathways <folder-id>",
	Short: "List the pathways inside a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetFolderPathways(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Pathways) == 0 {
			out.Println("Folder is empty")
			return nil
		}

		rows := make([][]string, 0, len(resp.Pathways))
		for _, p := range resp.Pathways {
			rows = append(rows, []string{p.PathwayID, p.Name, p.UpdatedAt})
		}
		return out.Table([]string{"PATHWAY ID", "NAME", "UPDATED"}, rows)
	},
}
