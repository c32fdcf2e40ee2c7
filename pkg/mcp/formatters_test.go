package mcp

import (
	"strings"
	"testing"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

func TestFormatCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		call        *bland.Call
		contains    []string
		notContains []string
	}{
		{
			name:     "nil call",
			call:     nil,
			contains: []string{"[Call not found]"},
		},
		{
			name: "basic call",
			call: &bland.Call{
				CallID:     "call-123",
				To:         "+12025550101",
				From:       "+12025550199",
				Status:     "completed",
				CallLength: 2.5,
				CreatedAt:  "2025-01-15T10:30:00Z",
			},
			contains: []string{
				"call-123",
				"+12025550101",
				"+12025550199",
				"Status: completed",
				"2.5 min",
				"2025-01-15",
			},
		},
		{
			name: "queued call falls back to queue status",
			call: &bland.Call{
				CallID:      "call-456",
				To:          "+12025550101",
				QueueStatus: "queued",
			},
			contains:    []string{"Status: queued"},
			notContains: []string{"Duration"},
		},
		{
			name: "call with summary and recording",
			call: &bland.Call{
				CallID:       "call-789",
				Status:       "completed",
				Summary:      "Caller confirmed the appointment.",
				RecordingURL: "https://recordings.example.com/call-789.mp3",
			},
			contains: []string{
				"Summary:",
				"Caller confirmed the appointment.",
				"Recording: https://recordings.example.com/call-789.mp3",
			},
		},
		{
			name: "failed call shows error",
			call: &bland.Call{
				CallID:       "call-bad",
				Status:       "failed",
				ErrorMessage: "destination unreachable",
			},
			contains: []string{"Error: destination unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCall(tt.call)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatCall() missing %q in:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notContains {
				if strings.Contains(got, notWant) {
					t.Errorf("FormatCall() should not contain %q in:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestFormatCallList(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		got := FormatCallList(nil, 0)
		if got != "No calls found." {
			t.Errorf("FormatCallList(nil) = %q", got)
		}
	})

	t.Run("list with total count", func(t *testing.T) {
		calls := []bland.Call{
			{CallID: "call-1", To: "+12025550101", Status: "completed", CallLength: 1.2},
			{CallID: "call-2", To: "+12025550102", QueueStatus: "queued"},
		}
		got := FormatCallList(calls, 50)

		for _, want := range []string{"(2 of 50)", "call-1", "call-2", "completed", "queued"} {
			if !strings.Contains(got, want) {
				t.Errorf("FormatCallList() missing %q in:\n%s", want, got)
			}
		}
	})
}

func TestFormatTranscripts(t *testing.T) {
	t.Parallel()

	t.Run("empty transcript", func(t *testing.T) {
		got := FormatTranscripts("call-1", nil)
		if !strings.Contains(got, "No transcript available") {
			t.Errorf("FormatTranscripts() = %q", got)
		}
	})

	t.Run("utterances in order", func(t *testing.T) {
		transcripts := []bland.Transcript{
			{ID: 1, User: "assistant", Text: "Hello, how can I help?"},
			{ID: 2, User: "user", Text: "I want to reschedule."},
		}
		got := FormatTranscripts("call-1", transcripts)

		if !strings.Contains(got, "assistant: Hello, how can I help?") {
			t.Errorf("missing assistant line in:\n%s", got)
		}
		if !strings.Contains(got, "user: I want to reschedule.") {
			t.Errorf("missing user line in:\n%s", got)
		}
		if strings.Index(got, "assistant:") > strings.Index(got, "user:") {
			t.Error("transcript lines out of order")
		}
	})
}

func TestFormatAnalysis(t *testing.T) {
	t.Parallel()

	questions := [][]string{
		{"Was the goal met?", "boolean"},
		{"Who answered?", "string"},
		{"How long did it take?", "number"},
	}
	answers := []any{true, "the customer"}

	got := FormatAnalysis(questions, answers, 1.5)

	for _, want := range []string{
		"Q: Was the goal met?",
		"A: true",
		"Q: Who answered?",
		"A: the customer",
		"Q: How long did it take?",
		"A: no answer",
		"Credits used: 1.50",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatAnalysis() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatPathwayList(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		if got := FormatPathwayList(nil); got != "No pathways found." {
			t.Errorf("FormatPathwayList(nil) = %q", got)
		}
	})

	t.Run("long description is truncated", func(t *testing.T) {
		pathways := []bland.Pathway{
			{
				PathwayID:   "pw-1",
				Name:        "Appointment booking",
				Description: strings.Repeat("very long description ", 10),
			},
		}
		got := FormatPathwayList(pathways)

		if !strings.Contains(got, "pw-1") || !strings.Contains(got, "Appointment booking") {
			t.Errorf("FormatPathwayList() missing pathway fields in:\n%s", got)
		}
		if !strings.Contains(got, "...") {
			t.Errorf("long description should be truncated in:\n%s", got)
		}
	})
}

func TestFormatVoiceList(t *testing.T) {
	t.Parallel()

	voices := []bland.Voice{
		{VoiceID: "v-1", Name: "mason", Language: "en-US", Gender: "male", Public: true},
		{VoiceID: "v-2", Name: "custom-clone"},
	}
	got := FormatVoiceList(voices)

	for _, want := range []string{"v-1", "mason", "en-US", "public", "v-2", "custom-clone"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatVoiceList() missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatNumberList(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		if got := FormatNumberList(nil); got != "No inbound numbers found." {
			t.Errorf("FormatNumberList(nil) = %q", got)
		}
	})

	t.Run("pathway wins over task", func(t *testing.T) {
		numbers := []bland.InboundNumber{
			{PhoneNumber: "+12025550101", PathwayID: "pw-1", Task: "ignored"},
			{PhoneNumber: "+12025550102", Task: "Answer support questions"},
		}
		got := FormatNumberList(numbers)

		if !strings.Contains(got, "+12025550101  pathway: pw-1") {
			t.Errorf("missing pathway line in:\n%s", got)
		}
		if strings.Contains(got, "ignored") {
			t.Errorf("task should be hidden when a pathway is set:\n%s", got)
		}
		if !strings.Contains(got, "task: Answer support questions") {
			t.Errorf("missing task line in:\n%s", got)
		}
	})
}
