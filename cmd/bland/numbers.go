package main

import (
	"fmt"

	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	numberAreaCode string
	numberCountry  string

	inboundTask        string
	inboundPathway     string
	inboundModel       string
	inboundVoice       string
	inboundLanguage    string
	inboundTemperature float64
	inboundMaxDuration int
)

func init() {
	rootCmd.AddCommand(numberCmd)
	numberCmd.AddCommand(numberPurchaseCmd)
	numberCmd.AddCommand(numberListInboundCmd)
	numberCmd.AddCommand(numberListOutboundCmd)
	numberCmd.AddCommand(numberGetCmd)
	numberCmd.AddCommand(numberUpdateCmd)
	numberCmd.AddCommand(numberDeleteCmd)
	numberCmd.AddCommand(numberUploadCmd)

	numberPurchaseCmd.Flags().StringVar(&numberAreaCode, "area-code", "", "Preferred area code")
	numberPurchaseCmd.Flags().StringVar(&numberCountry, "country", "", "ISO country code, default US")

	for _, cmd := range []*cobra.Command{numberUpdateCmd, numberUploadCmd} {
		cmd.Flags().StringVar(&inboundTask, "task", "", "Prompt handling inbound calls")
		cmd.Flags().StringVar(&inboundPathway, "pathway", "", "Pathway handling inbound calls")
		cmd.Flags().StringVar(&inboundModel, "model", "", "Model: base, turbo, or enhanced")
		cmd.Flags().StringVar(&inboundVoice, "voice", "", "Voice preset or cloned voice ID")
		cmd.Flags().StringVar(&inboundLanguage, "language", "", "Language tag, e.g. en-US")
		cmd.Flags().Float64Var(&inboundTemperature, "temperature", 0, "Model temperature between 0 and 1")
		cmd.Flags().IntVar(&inboundMaxDuration, "max-duration", 0, "Maximum call length in minutes")
	}
}

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Manage inbound and outbound phone numbers",
}

var numberPurchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Buy a new inbound number",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm("Purchase a new phone number?") {
			return nil
		}

		resp, err := getClient().PurchasePhoneNumber(cmd.Context(), numberAreaCode, numberCountry)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Number purchased\n")
			out.Field("phone_number", resp.PhoneNumber)
		}
		return nil
	},
}

var numberListInboundCmd = &cobra.Command{
	Use:   "list",
	Short: "List inbound numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListInboundNumbers(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.InboundNumbers) == 0 {
			out.Println("No inbound numbers")
			return nil
		}

		rows := make([][]string, 0, len(resp.InboundNumbers))
		for _, n := range resp.InboundNumbers {
			handler := n.PathwayID
			if handler == "" && n.Task != "" {
				handler = "task"
			}
			rows = append(rows, []string{n.PhoneNumber, handler, n.Voice})
		}
		return out.Table([]string{"NUMBER", "HANDLER", "VOICE"}, rows)
	},
}

var numberListOutboundCmd = &cobra.Command{
	Use:   "list-outbound",
	Short: "List outbound caller IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListOutboundNumbers(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			for _, n := range resp.OutboundNumbers {
				out.Println(n)
			}
		}
		return nil
	},
}

var numberGetCmd = &cobra.Command{
	Use:   "get <phone-number>",
	Short: "Show an inbound number's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetInboundDetails(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		out.Field("phone_number", resp.PhoneNumber)
		if resp.PathwayID != "" {
			out.Field("pathway", resp.PathwayID)
		}
		if resp.Task != "" {
			out.Field("task", resp.Task)
		}
		out.Field("voice", resp.Voice)
		out.Field("model", resp.Model)
		return nil
	},
}

var numberUpdateCmd = &cobra.Command{
	Use:   "update <phone-number>",
	Short: "Change how an inbound number answers calls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().UpdateInboundDetails(cmd.Context(), bland.UpdateInboundParams{
			PhoneNumber: args[0],
			Task:        inboundTask,
			PathwayID:   inboundPathway,
			Model:       inboundModel,
			Voice:       inboundVoice,
			Language:    inboundLanguage,
			Temperature: inboundTemperature,
			MaxDuration: inboundMaxDuration,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Number %s updated\n", args[0])
		}
		return nil
	},
}

var numberDeleteCmd = &cobra.Command{
	Use:   "delete <phone-number>",
	Short: "Release an inbound number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm(fmt.Sprintf("Release number %s?", args[0])) {
			return nil
		}

		resp, err := getClient().DeleteInboundNumber(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Number %s released\n", args[0])
		}
		return nil
	},
}

var numberUploadCmd = &cobra.Command{
	Use:   "upload <phone-number>...",
	Short: "Register carrier-ported numbers for inbound handling",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().UploadInboundNumbers(cmd.Context(), bland.UploadInboundParams{
			PhoneNumbers: args,
			Task:         inboundTask,
			PathwayID:    inboundPathway,
			Model:        inboundModel,
			Voice:        inboundVoice,
			Language:     inboundLanguage,
			Temperature:  inboundTemperature,
			MaxDuration:  inboundMaxDuration,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Uploaded %d number(s)\n", resp.Uploaded)
		}
		return nil
	},
}
