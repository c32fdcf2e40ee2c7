package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kelmorin/bland-cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	flagToken string
	flagOrgID string
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)

	loginCmd.Flags().StringVar(&flagToken, "token", "", "Bland API key")
	loginCmd.Flags().StringVar(&flagOrgID, "org", "", "Organization ID for enterprise accounts")
	loginCmd.MarkFlagRequired("token")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored API credentials",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API key",
	Long: `Store a Bland API key for subsequent commands.

The key is verified against the API before it is saved. Set
BLAND_SESSION_PASSPHRASE to encrypt the stored credentials at rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		if session.IsAuthenticated() && !confirm("Credentials already stored. Overwrite?") {
			return nil
		}

		sess := &session.Session{
			Token:     flagToken,
			OrgID:     flagOrgID,
			CreatedAt: time.Now().UTC(),
		}
		if err := session.Save(sess); err != nil {
			fail(out, fmt.Errorf("save credentials: %w", err))
		}

		// Verify the key actually works before declaring success.
		c := getClient()
		resp, err := c.ListVoices(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if resp.IsError() {
			session.Clear()
			fail(out, fmt.Errorf("key rejected by API: %s", resp.Message))
		}

		if out.IsJSON() {
			out.Success(map[string]bool{"logged_in": true})
		} else {
			out.Successf("Credentials stored\n")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		if err := session.Clear(); err != nil {
			fail(out, err)
		}

		if out.IsJSON() {
			out.Success(map[string]bool{"logged_out": true})
		} else {
			out.Println("Credentials removed")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		if !session.IsAuthenticated() {
			if out.IsJSON() {
				out.Success(map[string]bool{"authenticated": false})
			} else {
				out.Println("Not authenticated; run 'bland auth login' or set BLAND_API_KEY")
			}
			return nil
		}

		c := getClient()
		resp, err := c.ListVoices(context.Background())
		if err != nil {
			fail(out, err)
		}
		valid := !resp.IsError()

		if out.IsJSON() {
			out.Success(map[string]any{
				"authenticated": true,
				"key_valid":     valid,
				"org_id":        session.GetOrgID(),
			})
			return nil
		}
		if valid {
			out.Successf("Authenticated, key accepted by API\n")
		} else {
			out.Printf("Credentials stored but rejected by API: %s\n", resp.Message)
		}
		if orgID := session.GetOrgID(); orgID != "" {
			out.Field("org", orgID)
		}
		return nil
	},
}
