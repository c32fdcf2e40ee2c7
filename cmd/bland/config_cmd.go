package main

import (
	"sort"

	"github.com/kelmorin/bland-cli/pkg/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		value, err := config.Get(args[0])
		if err != nil {
			fail(out, err)
		}
		if out.IsJSON() {
			out.Success(map[string]string{args[0]: value})
		} else {
			out.Println(value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if err := config.Set(args[0], args[1]); err != nil {
			fail(out, err)
		}
		if out.IsJSON() {
			out.Success(map[string]string{args[0]: args[1]})
		} else {
			out.Successf("%s = %s\n", args[0], args[1])
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		values, err := config.List()
		if err != nil {
			fail(out, err)
		}
		if out.IsJSON() {
			out.Success(values)
			return nil
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out.Field(k, values[k])
		}
		return nil
	},
}
