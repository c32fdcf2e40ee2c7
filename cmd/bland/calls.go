package main

import (
	"fmt"
	"strings"

	"github.com/kelmorin/bland-cli/pkg/bland"
	blandctx "github.com/kelmorin/bland-cli/pkg/context"
	"github.com/kelmorin/bland-cli/pkg/output"
	"github.com/spf13/cobra"
)

var (
	callTask          string
	callPathway       string
	callVoice         string
	callModel         string
	callFrom          string
	callFirstSentence string
	callMaxDuration   int
	callTemperature   float64
	callRecord        bool
	callWait          bool
	callWebhook       string
	callStartTime     string
	callTransfer      string

	listFromNumber string
	listToNumber   string
	listBatchID    string
	listInbound    bool
	listCompleted  bool
	listAscending  bool

	analyzeGoal      string
	analyzeQuestions []string
)

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.AddCommand(callSendCmd)
	callCmd.AddCommand(callStopCmd)
	callCmd.AddCommand(callStopAllCmd)
	callCmd.AddCommand(callListCmd)
	callCmd.AddCommand(callGetCmd)
	callCmd.AddCommand(callAnalyzeCmd)
	callCmd.AddCommand(callRecordingCmd)
	callCmd.AddCommand(callTranscriptsCmd)

	callSendCmd.Flags().StringVar(&callTask, "task", "", "Prompt describing what the agent should do")
	callSendCmd.Flags().StringVar(&callPathway, "pathway", "", "Conversation pathway ID to follow")
	callSendCmd.Flags().StringVar(&callVoice, "voice", "", "Voice preset or cloned voice ID")
	callSendCmd.Flags().StringVar(&callModel, "model", "", "Model: base, turbo, or enhanced")
	callSendCmd.Flags().StringVar(&callFrom, "from", "", "Caller ID, must be a number you own")
	callSendCmd.Flags().StringVar(&callFirstSentence, "first-sentence", "", "Opening line spoken by the agent")
	callSendCmd.Flags().IntVar(&callMaxDuration, "max-duration", 0, "Maximum call length in minutes")
	callSendCmd.Flags().Float64Var(&callTemperature, "temperature", 0, "Model temperature between 0 and 1")
	callSendCmd.Flags().BoolVar(&callRecord, "record", false, "Record the call")
	callSendCmd.Flags().BoolVar(&callWait, "wait-for-greeting", false, "Wait for the callee to speak first")
	callSendCmd.Flags().StringVar(&callWebhook, "webhook", "", "URL notified when the call completes")
	callSendCmd.Flags().StringVar(&callStartTime, "start-time", "", "Schedule the call (YYYY-MM-DD HH:MM:SS -HH:MM)")
	callSendCmd.Flags().StringVar(&callTransfer, "transfer-to", "", "Number to transfer to on request")

	callListCmd.Flags().StringVar(&listFromNumber, "from", "", "Filter by caller number")
	callListCmd.Flags().StringVar(&listToNumber, "to", "", "Filter by callee number")
	callListCmd.Flags().StringVar(&listBatchID, "batch", "", "Filter by batch ID")
	callListCmd.Flags().BoolVar(&listInbound, "inbound", false, "Only inbound calls")
	callListCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed calls")
	callListCmd.Flags().BoolVar(&listAscending, "ascending", false, "Oldest first")

	callAnalyzeCmd.Flags().StringVar(&analyzeGoal, "goal", "", "What the analysis should determine")
	callAnalyzeCmd.Flags().StringArrayVar(&analyzeQuestions, "question", nil, "Question as 'text:answer_type', repeatable")
	callAnalyzeCmd.MarkFlagRequired("goal")
	callAnalyzeCmd.MarkFlagRequired("question")
}

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Place, inspect, and stop AI phone calls",
}

var callSendCmd = &cobra.Command{
	Use:   "send <phone-number>",
	Short: "Place an outbound AI call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		c := getClient()

		p := bland.SendCallParams{
			PhoneNumber:         args[0],
			Task:                callTask,
			PathwayID:           callPathway,
			Voice:               callVoice,
			Model:               callModel,
			From:                callFrom,
			FirstSentence:       callFirstSentence,
			Record:              callRecord,
			WaitForGreeting:     callWait,
			Webhook:             callWebhook,
			StartTime:           callStartTime,
			TransferPhoneNumber: callTransfer,
		}
		if cmd.Flags().Changed("max-duration") {
			p.MaxDuration = &callMaxDuration
		}
		if cmd.Flags().Changed("temperature") {
			p.Temperature = &callTemperature
		}

		resp, err := c.SendCall(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if resp.CallID != "" {
			blandctx.Set(resp.CallID, "call")
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Call queued\n")
			out.Field("call_id", resp.CallID)
		}
		return nil
	},
}

var callStopCmd = &cobra.Command{
	Use:   "stop <call-id>",
	Short: "Stop an in-progress call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		callID := resolveID(out, args[0], "call")

		resp, err := getClient().StopCall(cmd.Context(), callID)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Call %s stopped\n", callID)
		}
		return nil
	},
}

var callStopAllCmd = &cobra.Command{
	Use:   "stop-all",
	Short: "Stop every active call on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		if !confirm("Stop ALL active calls?") {
			return nil
		}

		resp, err := getClient().StopAllCalls(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Stopped %d call(s)\n", resp.NumStopped)
		}
		return nil
	},
}

var callListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past and active calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		p := bland.ListCallsParams{
			Limit:      flagLimit,
			Ascending:  listAscending,
			FromNumber: listFromNumber,
			ToNumber:   listToNumber,
			BatchID:    listBatchID,
		}
		if cmd.Flags().Changed("inbound") {
			p.Inbound = &listInbound
		}
		if cmd.Flags().Changed("completed") {
			p.Completed = &listCompleted
		}

		resp, err := getClient().ListCalls(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Calls) == 0 {
			out.Println("No calls found")
			return nil
		}

		rows := make([][]string, 0, len(resp.Calls))
		for _, call := range resp.Calls {
			rows = append(rows, []string{
				call.CallID,
				call.To,
				call.Status,
				fmt.Sprintf("%.1fm", call.CallLength),
				call.CreatedAt,
			})
		}
		return out.Table([]string{"CALL ID", "TO", "STATUS", "LENGTH", "CREATED"}, rows)
	},
}

var callGetCmd = &cobra.Command{
	Use:   "get <call-id>",
	Short: "Show one call's details and transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		callID := resolveID(out, args[0], "call")

		resp, err := getClient().GetCallDetails(cmd.Context(), callID)
		if err != nil {
			fail(out, err)
		}
		blandctx.Set(callID, "call")
		if !finish(out, &resp.APIResponse) {
			return nil
		}

		out.Field("call_id", resp.CallID)
		out.Field("to", resp.To)
		out.Field("from", resp.Call.From)
		out.Field("status", resp.Call.Status)
		out.Field("length", fmt.Sprintf("%.1fm", resp.CallLength))
		if resp.Summary != "" {
			out.Field("summary", resp.Summary)
		}
		renderTranscripts(out, resp.Transcripts)
		return nil
	},
}

var callAnalyzeCmd = &cobra.Command{
	Use:   "analyze <call-id>",
	Short: "Run an AI analysis over a completed call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		callID := resolveID(out, args[0], "call")

		questions := make([][]string, 0, len(analyzeQuestions))
		for _, q := range analyzeQuestions {
			text, answerType, found := strings.Cut(q, ":")
			if !found {
				answerType = "string"
			}
			questions = append(questions, []string{text, answerType})
		}

		resp, err := getClient().AnalyzeCall(cmd.Context(), callID, bland.AnalyzeCallParams{
			Goal:      analyzeGoal,
			Questions: questions,
		})
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		for i, answer := range resp.Answers {
			out.Field(fmt.Sprintf("answer %d", i+1), answer)
		}
		out.Field("credits_used", resp.CreditsUsed)
		return nil
	},
}

var callRecordingCmd = &cobra.Command{
	Use:   "recording <call-id>",
	Short: "Get the recording URL for a recorded call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		callID := resolveID(out, args[0], "call")

		resp, err := getClient().GetCallRecording(cmd.Context(), callID)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Println(resp.URL)
		}
		return nil
	},
}

var callTranscriptsCmd = &cobra.Command{
	Use:   "transcripts <call-id>",
	Short: "Show the aligned transcripts for a call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		callID := resolveID(out, args[0], "call")

		resp, err := getClient().GetCallTranscripts(cmd.Context(), callID)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			renderTranscripts(out, resp.Transcripts)
		}
		return nil
	},
}

func renderTranscripts(out *output.Printer, transcripts []bland.Transcript) {
	for _, t := range transcripts {
		out.Printf("%-10s %s\n", t.User+":", t.Text)
	}
}

// resolveID expands "this" to the remembered resource ID.
func resolveID(out *output.Printer, target, wantType string) string {
	id, _, err := blandctx.ResolveTarget(target, wantType)
	if err != nil {
		fail(out, err)
	}
	return id
}
