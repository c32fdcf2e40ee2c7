package mcp

import (
	"fmt"
	"strings"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

// FormatCall formats a call record for text display.
func FormatCall(call *bland.Call) string {
	if call == nil {
		return "[Call not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("Call %s", call.CallID))
	lines = append(lines, fmt.Sprintf("To: %s | From: %s", call.To, call.From))

	status := call.Status
	if status == "" {
		status = call.QueueStatus
	}
	if status != "" {
		lines = append(lines, fmt.Sprintf("Status: %s", status))
	}

	if call.AnsweredBy != "" {
		lines = append(lines, fmt.Sprintf("Answered by: %s", call.AnsweredBy))
	}
	if call.CallLength > 0 {
		lines = append(lines, fmt.Sprintf("Duration: %.1f min", call.CallLength))
	}
	if call.BatchID != "" {
		lines = append(lines, fmt.Sprintf("Batch: %s", call.BatchID))
	}
	if call.PathwayID != "" {
		lines = append(lines, fmt.Sprintf("Pathway: %s", call.PathwayID))
	}
	if call.CreatedAt != "" {
		lines = append(lines, fmt.Sprintf("Created: %s", call.CreatedAt))
	}
	if call.RecordingURL != "" {
		lines = append(lines, fmt.Sprintf("Recording: %s", call.RecordingURL))
	}
	if call.ErrorMessage != "" {
		lines = append(lines, fmt.Sprintf("Error: %s", call.ErrorMessage))
	}
	if call.Summary != "" {
		lines = append(lines, "", "Summary:", call.Summary)
	}

	return strings.Join(lines, "\n")
}

// FormatCallCompact formats a call in a compact single-line format.
func FormatCallCompact(call *bland.Call) string {
	if call == nil {
		return "[Call not found]"
	}

	status := call.Status
	if status == "" {
		status = call.QueueStatus
	}
	if status == "" {
		status = "unknown"
	}

	return fmt.Sprintf("%s  %s  %s  %.1f min", call.CallID, call.To, status, call.CallLength)
}

// FormatCallList formats a list of calls for text display.
func FormatCallList(calls []bland.Call, count int) string {
	if len(calls) == 0 {
		return "No calls found."
	}

	var lines []string
	if count > 0 {
		lines = append(lines, fmt.Sprintf("=== Calls (%d of %d) ===", len(calls), count))
	} else {
		lines = append(lines, fmt.Sprintf("=== Calls (%d) ===", len(calls)))
	}
	lines = append(lines, "")
	for _, call := range calls {
		lines = append(lines, FormatCallCompact(&call))
	}

	return strings.Join(lines, "\n")
}

// FormatTranscripts formats a call transcript for text display.
func FormatTranscripts(callID string, transcripts []bland.Transcript) string {
	if len(transcripts) == 0 {
		return fmt.Sprintf("No transcript available for call %s.", callID)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Transcript for %s ===", callID))
	lines = append(lines, "")
	for _, t := range transcripts {
		lines = append(lines, fmt.Sprintf("%s: %s", t.User, t.Text))
	}

	return strings.Join(lines, "\n")
}

// FormatAnalysis pairs analysis answers back with the questions asked.
func FormatAnalysis(questions [][]string, answers []any, creditsUsed float64) string {
	var lines []string
	lines = append(lines, "=== Analysis ===")

	for i, q := range questions {
		if len(q) == 0 {
			continue
		}
		answer := "no answer"
		if i < len(answers) && answers[i] != nil {
			answer = fmt.Sprintf("%v", answers[i])
		}
		lines = append(lines, fmt.Sprintf("Q: %s", q[0]))
		lines = append(lines, fmt.Sprintf("A: %s", answer))
	}

	if creditsUsed > 0 {
		lines = append(lines, "", fmt.Sprintf("Credits used: %.2f", creditsUsed))
	}

	return strings.Join(lines, "\n")
}

// FormatPathwayList formats a list of pathways for text display.
func FormatPathwayList(pathways []bland.Pathway) string {
	if len(pathways) == 0 {
		return "No pathways found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Pathways (%d) ===", len(pathways)))
	lines = append(lines, "")
	for _, p := range pathways {
		line := fmt.Sprintf("%s  %s", p.PathwayID, p.Name)
		if p.Description != "" {
			desc := p.Description
			if len(desc) > 60 {
				desc = desc[:57] + "..."
			}
			line += fmt.Sprintf("  (%s)", desc)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// FormatVoiceList formats the available voices for text display.
func FormatVoiceList(voices []bland.Voice) string {
	if len(voices) == 0 {
		return "No voices found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Voices (%d) ===", len(voices)))
	lines = append(lines, "")
	for _, v := range voices {
		line := fmt.Sprintf("%s  %s", v.VoiceID, v.Name)
		var attrs []string
		if v.Language != "" {
			attrs = append(attrs, v.Language)
		}
		if v.Gender != "" {
			attrs = append(attrs, v.Gender)
		}
		if v.Public {
			attrs = append(attrs, "public")
		}
		if len(attrs) > 0 {
			line += fmt.Sprintf("  [%s]", strings.Join(attrs, ", "))
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// FormatNumberList formats the account's inbound numbers for text display.
func FormatNumberList(numbers []bland.InboundNumber) string {
	if len(numbers) == 0 {
		return "No inbound numbers found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Inbound Numbers (%d) ===", len(numbers)))
	lines = append(lines, "")
	for _, n := range numbers {
		line := n.PhoneNumber
		if n.PathwayID != "" {
			line += fmt.Sprintf("  pathway: %s", n.PathwayID)
		} else if n.Task != "" {
			task := strings.ReplaceAll(n.Task, "\n", " ")
			if len(task) > 60 {
				task = task[:57] + "..."
			}
			line += fmt.Sprintf("  task: %s", task)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
