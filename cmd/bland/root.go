package main

import (
	"fmt"
	"os"

	"github.com/kelmorin/bland-cli/pkg/config"
	"github.com/kelmorin/bland-cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagJSON   bool
	flagRaw    bool
	flagQuiet  bool
	flagNoANSI bool
	flagYes    bool
	flagLimit  int
	flagDebug  bool

	// Version metadata (filled by goreleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "bland",
	Short:   "Bland — AI phone calls from the command line",
	Long:    "A CLI and MCP server for the Bland AI voice-call platform",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize configuration
		if _, err := config.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		// Load credentials (ignore errors, auth is checked per call)
		session.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagRaw, "raw", false, "Minimal human output (no decoration)")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoANSI, "no-ansi", false, "Disable ANSI formatting")
	rootCmd.PersistentFlags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "Max items returned by list commands")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log request/response metadata to stderr")
}

func Execute() error {
	return rootCmd.Execute()
}
