package main

import (
	"fmt"
	"strconv"

	"github.com/kelmorin/bland-cli/pkg/bland"
	blandctx "github.com/kelmorin/bland-cli/pkg/context"
	"github.com/spf13/cobra"
)

var (
	batchTask        string
	batchPathway     string
	batchModel       string
	batchVoice       string
	batchSchedule    string
	batchMaxDuration int

	batchListStatus []string
	batchListSortBy string
	batchListOrder  string

	batchIncludeCalls bool
	batchCallStatus   string

	batchGoal      string
	batchQuestions []string
)

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.AddCommand(batchSendCmd)
	batchCmd.AddCommand(batchListCmd)
	batchCmd.AddCommand(batchGetCmd)
	batchCmd.AddCommand(batchAnalyzeCmd)
	batchCmd.AddCommand(batchAnalysisCmd)
	batchCmd.AddCommand(batchStopCmd)

	batchSendCmd.Flags().StringVar(&batchTask, "task", "", "Prompt shared by every call in the batch")
	batchSendCmd.Flags().StringVar(&batchPathway, "pathway", "", "Conversation pathway ID to follow")
	batchSendCmd.Flags().StringVar(&batchModel, "model", "", "Model: base, turbo, or enhanced")
	batchSendCmd.Flags().StringVar(&batchVoice, "voice", "", "Voice preset or cloned voice ID")
	batchSendCmd.Flags().StringVar(&batchSchedule, "schedule", "", "Schedule the batch (RFC 3339 timestamp)")
	batchSendCmd.Flags().IntVar(&batchMaxDuration, "max-duration", 0, "Maximum call length in minutes")

	batchListCmd.Flags().StringArrayVar(&batchListStatus, "status", nil, "Filter by call status, repeatable")
	batchListCmd.Flags().StringVar(&batchListSortBy, "sort-by", "", "Field to sort on")
	batchListCmd.Flags().StringVar(&batchListOrder, "sort-order", "", "asc or desc, requires --sort-by")

	batchGetCmd.Flags().BoolVar(&batchIncludeCalls, "calls", false, "Include individual call records")
	batchGetCmd.Flags().StringVar(&batchCallStatus, "call-status", "", "Filter included calls by status")

	batchAnalyzeCmd.Flags().StringVar(&batchGoal, "goal", "", "What the analysis should determine")
	batchAnalyzeCmd.Flags().StringArrayVar(&batchQuestions, "question", nil, "Question to answer per call, repeatable")
	batchAnalyzeCmd.MarkFlagRequired("goal")
	batchAnalyzeCmd.MarkFlagRequired("question")
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Send and manage batches of calls",
}

var batchSendCmd = &cobra.Command{
	Use:   "send <phone-number>...",
	Short: "Place the same call to many numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		p := bland.SendBatchCallsParams{
			PhoneNumbers: args,
			Task:         batchTask,
			PathwayID:    batchPathway,
			Model:        batchModel,
			Voice:        batchVoice,
			ScheduleTime: batchSchedule,
		}
		if cmd.Flags().Changed("max-duration") {
			p.MaxDuration = &batchMaxDuration
		}

		resp, err := getClient().SendBatchCalls(cmd.Context(), p)
		if err != nil {
			fail(out, err)
		}
		if resp.BatchID != "" {
			blandctx.Set(resp.BatchID, "batch")
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Batch queued, %d call(s)\n", len(resp.CallIDs))
			out.Field("batch_id", resp.BatchID)
		}
		return nil
	},
}

var batchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List call batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListBatches(cmd.Context(), bland.ListBatchesParams{
			Limit:     flagLimit,
			Status:    batchListStatus,
			SortBy:    batchListSortBy,
			SortOrder: batchListOrder,
		})
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Batches) == 0 {
			out.Println("No batches found")
			return nil
		}

		rows := make([][]string, 0, len(resp.Batches))
		for _, b := range resp.Batches {
			rows = append(rows, []string{
				b.BatchID,
				b.Label,
				b.Status,
				fmt.Sprintf("%d/%d", b.CompletedCalls, b.TotalCalls),
				b.CreatedAt,
			})
		}
		return out.Table([]string{"BATCH ID", "LABEL", "STATUS", "DONE", "CREATED"}, rows)
	},
}

var batchGetCmd = &cobra.Command{
	Use:   "get <batch-id>",
	Short: "Show one batch's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		batchID := resolveID(out, args[0], "batch")

		resp, err := getClient().GetBatchDetails(cmd.Context(), batchID, bland.BatchDetailsParams{
			IncludeCalls: batchIncludeCalls,
			CallStatus:   batchCallStatus,
		})
		if err != nil {
			fail(out, err)
		}
		blandctx.Set(batchID, "batch")
		if !finish(out, &resp.APIResponse) {
			return nil
		}

		out.Field("batch_id", resp.BatchID)
		out.Field("label", resp.Label)
		out.Field("status", resp.Batch.Status)
		out.Field("completed", strconv.Itoa(resp.CompletedCalls)+"/"+strconv.Itoa(resp.TotalCalls))
		if resp.FailedCalls > 0 {
			out.Field("failed", resp.FailedCalls)
		}
		for _, call := range resp.Calls {
			out.Printf("  %s  %s  %s\n", call.CallID, call.To, call.Status)
		}
		return nil
	},
}

var batchAnalyzeCmd = &cobra.Command{
	Use:   "analyze <batch-id>",
	Short: "Start an AI analysis over a batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		batchID := resolveID(out, args[0], "batch")

		resp, err := getClient().AnalyzeBatch(cmd.Context(), batchID, bland.AnalyzeBatchParams{
			Goal:      batchGoal,
			Questions: batchQuestions,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Analysis started\n")
			out.Field("analysis_id", resp.AnalysisID)
		}
		return nil
	},
}

var batchAnalysisCmd = &cobra.Command{
	Use:   "analysis <batch-id> <analysis-id>",
	Short: "Fetch a previously requested batch analysis",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		batchID := resolveID(out, args[0], "batch")

		resp, err := getClient().GetBatchAnalysis(cmd.Context(), batchID, args[1], bland.BatchAnalysisParams{})
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		for key, value := range resp.Results {
			out.Field(key, value)
		}
		return nil
	},
}

var batchStopCmd = &cobra.Command{
	Use:   "stop <batch-id>",
	Short: "Stop every active call in a batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()
		batchID := resolveID(out, args[0], "batch")
		if !confirm(fmt.Sprintf("Stop all active calls in batch %s?", batchID)) {
			return nil
		}

		resp, err := getClient().StopBatch(cmd.Context(), batchID)
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Stopped %d call(s)\n", resp.StoppedCalls)
		}
		return nil
	},
}
