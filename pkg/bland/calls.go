package bland

import "context"

// SendCallParams configures an outbound AI phone call. PhoneNumber is
// required, along with either Task or PathwayID. Unset Voice, Model,
// Language, MaxDuration, Temperature, and InterruptionThreshold fall
// back to the client defaults; the numeric fields are pointers so an
// explicit zero is distinguishable from unset.
type SendCallParams struct {
	PhoneNumber           string            `json:"phone_number"`
	Task                  string            `json:"task,omitempty"`
	PathwayID             string            `json:"pathway_id,omitempty"`
	StartNodeID           string            `json:"start_node_id,omitempty"`
	Voice                 string            `json:"voice,omitempty"`
	BackgroundTrack       string            `json:"background_track,omitempty"`
	FirstSentence         string            `json:"first_sentence,omitempty"`
	WaitForGreeting       bool              `json:"wait_for_greeting,omitempty"`
	BlockInterruptions    bool              `json:"block_interruptions,omitempty"`
	InterruptionThreshold *int              `json:"interruption_threshold,omitempty"`
	Model                 string            `json:"model,omitempty"`
	Temperature           *float64          `json:"temperature,omitempty"`
	Keywords              []string          `json:"keywords,omitempty"`
	PronunciationGuide    []map[string]any  `json:"pronunciation_guide,omitempty"`
	TransferPhoneNumber   string            `json:"transfer_phone_number,omitempty"`
	TransferList          map[string]string `json:"transfer_list,omitempty"`
	Language              string            `json:"language,omitempty"`
	Timezone              string            `json:"timezone,omitempty"`
	RequestData           map[string]any    `json:"request_data,omitempty"`
	Tools                 []map[string]any  `json:"tools,omitempty"`
	DynamicData           []map[string]any  `json:"dynamic_data,omitempty"`
	StartTime             string            `json:"start_time,omitempty"`
	VoicemailMessage      string            `json:"voicemail_message,omitempty"`
	VoicemailAction       map[string]any    `json:"voicemail_action,omitempty"`
	Retry                 map[string]any    `json:"retry,omitempty"`
	MaxDuration           *int              `json:"max_duration,omitempty"`
	Record                bool              `json:"record,omitempty"`
	From                  string            `json:"from,omitempty"`
	Webhook               string            `json:"webhook,omitempty"`
	WebhookEvents         []string          `json:"webhook_events,omitempty"`
	Metadata              map[string]any    `json:"metadata,omitempty"`
	SummaryPrompt         string            `json:"summary_prompt,omitempty"`
	AnalysisPrompt        string            `json:"analysis_prompt,omitempty"`
	AnalysisSchema        map[string]any    `json:"analysis_schema,omitempty"`
	AnsweredByEnabled     bool              `json:"answered_by_enabled,omitempty"`
}

// SendCallResponse is returned by the call-send operations.
type SendCallResponse struct {
	APIResponse
	CallID  string `json:"call_id,omitempty"`
	BatchID string `json:"batch_id,omitempty"`
}

// SendCall places an outbound AI phone call.
func (c *Client) SendCall(ctx context.Context, p SendCallParams) (*SendCallResponse, error) {
	if p.PhoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	if p.Task == "" && p.PathwayID == "" {
		return nil, &MissingOneOfError{Fields: []string{"task", "pathway_id"}}
	}
	phone, err := normalizePhone(p.PhoneNumber)
	if err != nil {
		return nil, err
	}
	p.PhoneNumber = phone

	if p.Voice == "" {
		p.Voice = c.defaults.Voice
	}
	if p.Model == "" {
		p.Model = c.defaults.Model
	}
	if p.Language == "" {
		p.Language = c.defaults.Language
	}
	if p.MaxDuration == nil {
		d := c.defaults.MaxDuration
		p.MaxDuration = &d
	}
	if p.Temperature == nil {
		d := c.defaults.Temperature
		p.Temperature = &d
	}
	if p.InterruptionThreshold == nil {
		d := c.defaults.InterruptionThreshold
		p.InterruptionThreshold = &d
	}

	if err := checkEnum("model", p.Model, Models); err != nil {
		return nil, err
	}
	if err := checkEnum("background_track", p.BackgroundTrack, BackgroundTracks); err != nil {
		return nil, err
	}
	if err := checkRange("temperature", *p.Temperature, 0.0, 1.0); err != nil {
		return nil, err
	}

	var resp SendCallResponse
	if err := c.do(ctx, opSendCall, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// simpleCallBody is the minimal payload used by the simple call-send
// variants; no defaults are attached.
type simpleCallBody struct {
	PhoneNumber string `json:"phone_number"`
	Task        string `json:"task,omitempty"`
	PathwayID   string `json:"pathway_id,omitempty"`
}

// SendCallSimple places a call with only a phone number and a task
// prompt, leaving every other parameter to the provider.
func (c *Client) SendCallSimple(ctx context.Context, phoneNumber, task string) (*SendCallResponse, error) {
	if phoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	if task == "" {
		return nil, &MissingFieldError{Field: "task"}
	}
	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	var resp SendCallResponse
	if err := c.do(ctx, opSendCall, nil, simpleCallBody{PhoneNumber: phone, Task: task}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendPathwayCallSimple places a call driven by a conversation pathway
// with no further tuning.
func (c *Client) SendPathwayCallSimple(ctx context.Context, phoneNumber, pathwayID string) (*SendCallResponse, error) {
	if phoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	if pathwayID == "" {
		return nil, &MissingFieldError{Field: "pathway_id"}
	}
	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	var resp SendCallResponse
	if err := c.do(ctx, opSendCall, nil, simpleCallBody{PhoneNumber: phone, PathwayID: pathwayID}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopCallResponse is returned by the stop operations.
type StopCallResponse struct {
	APIResponse
}

// StopCall stops a single in-progress call.
func (c *Client) StopCall(ctx context.Context, callID string) (*StopCallResponse, error) {
	if callID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	var resp StopCallResponse
	if err := c.do(ctx, opStopCall, vars{"call_id": callID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopAllCallsResponse reports how many active calls were stopped.
type StopAllCallsResponse struct {
	APIResponse
	NumStopped int `json:"num_stopped,omitempty"`
}

// StopAllCalls stops every active call on the account.
func (c *Client) StopAllCalls(ctx context.Context) (*StopAllCallsResponse, error) {
	var resp StopAllCallsResponse
	if err := c.do(ctx, opStopAllCalls, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCallsParams filters the call listing. Zero Limit falls back to
// the client default.
type ListCallsParams struct {
	Limit      int      `schema:"limit"`
	Ascending  bool     `schema:"ascending"`
	FromNumber string   `schema:"from_number,omitempty"`
	ToNumber   string   `schema:"to_number,omitempty"`
	FromIndex  *int     `schema:"from,omitempty"`
	ToIndex    *int     `schema:"to,omitempty"`
	StartDate  string   `schema:"start_date,omitempty"`
	EndDate    string   `schema:"end_date,omitempty"`
	CreatedAt  string   `schema:"created_at,omitempty"`
	Completed  *bool    `schema:"completed,omitempty"`
	BatchID    string   `schema:"batch_id,omitempty"`
	AnsweredBy string   `schema:"answered_by,omitempty"`
	Inbound    *bool    `schema:"inbound,omitempty"`
	DurationGT *float64 `schema:"duration_gt,omitempty"`
	DurationLT *float64 `schema:"duration_lt,omitempty"`
	CampaignID string   `schema:"campaign_id,omitempty"`
}

// Call is one entry in a call listing or detail response.
type Call struct {
	CallID         string         `json:"call_id,omitempty"`
	BatchID        string         `json:"batch_id,omitempty"`
	To             string         `json:"to,omitempty"`
	From           string         `json:"from,omitempty"`
	Status         string         `json:"status,omitempty"`
	Completed      bool           `json:"completed,omitempty"`
	Inbound        bool           `json:"inbound,omitempty"`
	AnsweredBy     string         `json:"answered_by,omitempty"`
	CallLength     float64        `json:"call_length,omitempty"`
	QueueStatus    string         `json:"queue_status,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	StartedAt      string         `json:"started_at,omitempty"`
	EndAt          string         `json:"end_at,omitempty"`
	Summary        string         `json:"summary,omitempty"`
	Price          float64        `json:"price,omitempty"`
	PathwayID      string         `json:"pathway_id,omitempty"`
	RecordingURL   string         `json:"recording_url,omitempty"`
	Transcripts    []Transcript   `json:"transcripts,omitempty"`
	Variables      map[string]any `json:"variables,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
}

// Transcript is one utterance in a call transcript.
type Transcript struct {
	ID        int    `json:"id,omitempty"`
	User      string `json:"user,omitempty"`
	Text      string `json:"text,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ListCallsResponse is returned by ListCalls.
type ListCallsResponse struct {
	APIResponse
	Count int    `json:"count,omitempty"`
	Calls []Call `json:"calls,omitempty"`
}

// ListCalls returns calls matching the given filters.
func (c *Client) ListCalls(ctx context.Context, p ListCallsParams) (*ListCallsResponse, error) {
	if p.Limit == 0 {
		p.Limit = c.defaults.Limit
	}
	if p.Limit < 1 {
		return nil, &RangeError{Field: "limit", Value: float64(p.Limit), Min: 1}
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp ListCallsResponse
	if err := c.do(ctx, opListCalls, nil, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CallDetailsResponse is returned by GetCallDetails.
type CallDetailsResponse struct {
	APIResponse
	Call
}

// GetCallDetails returns the full record for one call.
func (c *Client) GetCallDetails(ctx context.Context, callID string) (*CallDetailsResponse, error) {
	if callID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	var resp CallDetailsResponse
	if err := c.do(ctx, opCallDetails, vars{"call_id": callID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeCallParams configures a post-call analysis. Questions pairs a
// question with the expected answer type, e.g. ["Was the goal met?", "boolean"].
type AnalyzeCallParams struct {
	Goal      string     `json:"goal"`
	Questions [][]string `json:"questions"`
}

// AnalyzeCallResponse carries the provider's answers, ordered to match
// the questions asked.
type AnalyzeCallResponse struct {
	APIResponse
	Answers     []any   `json:"answers,omitempty"`
	CreditsUsed float64 `json:"credits_used,omitempty"`
}

// AnalyzeCall runs an AI analysis over a completed call.
func (c *Client) AnalyzeCall(ctx context.Context, callID string, p AnalyzeCallParams) (*AnalyzeCallResponse, error) {
	if callID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	if p.Goal == "" {
		return nil, &MissingFieldError{Field: "goal"}
	}
	if len(p.Questions) == 0 {
		return nil, &MissingFieldError{Field: "questions"}
	}
	var resp AnalyzeCallResponse
	if err := c.do(ctx, opAnalyzeCall, vars{"call_id": callID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CallRecordingResponse is returned by GetCallRecording.
type CallRecordingResponse struct {
	APIResponse
	URL string `json:"url,omitempty"`
}

// GetCallRecording returns the recording URL for a recorded call.
func (c *Client) GetCallRecording(ctx context.Context, callID string) (*CallRecordingResponse, error) {
	if callID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	var resp CallRecordingResponse
	if err := c.do(ctx, opCallRecording, vars{"call_id": callID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CallTranscriptsResponse is returned by GetCallTranscripts.
type CallTranscriptsResponse struct {
	APIResponse
	Transcripts []Transcript `json:"transcripts,omitempty"`
}

// GetCallTranscripts returns the aligned transcripts for a call.
func (c *Client) GetCallTranscripts(ctx context.Context, callID string) (*CallTranscriptsResponse, error) {
	if callID == "" {
		return nil, &MissingFieldError{Field: "call_id"}
	}
	var resp CallTranscriptsResponse
	if err := c.do(ctx, opCallTranscripts, vars{"call_id": callID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
