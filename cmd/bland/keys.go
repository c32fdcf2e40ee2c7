package main

import (
	"fmt"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	keyType        string
	keyValue       string
	keyDescription string
)

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyCreateCmd)
	keyCmd.AddCommand(keyDeleteCmd)

	keyCreateCmd.Flags().StringVar(&keyType, "type", "", "Secret type: api_key, password, token, or secret")
	keyCreateCmd.Flags().StringVar(&keyValue, "value", "", "The secret value to store")
	keyCreateCmd.Flags().StringVar(&keyDescription, "description", "", "What the secret is for")
	keyCreateCmd.MarkFlagRequired("type")
	keyCreateCmd.MarkFlagRequired("value")
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Store provider-side encrypted secrets for tools",
}

var keyCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Store a secret with the provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().CreateEncryptedKey(cmd.Context(), bland.CreateEncryptedKeyParams{
			Name:        args[0],
			KeyType:     keyType,
			Value:       keyValue,
			Description: keyDescription,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Key stored\n")
			out.Field("key_id", resp.KeyID)
		}
		return nil
	},
}

var keyDeleteCmd = &cobra.Command{
	Use:   "delete <key-id>",
	Short: "Delete a stored secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Delete key %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteEncryptedKey(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Key %s deleted\n", args[0])
		}
		return nil
	},
}
