package bland

import "context"

// SendBatchCallsParams configures a batch of outbound calls sharing one
// prompt or pathway. Every number is validated before anything is sent.
type SendBatchCallsParams struct {
	PhoneNumbers []string       `json:"phone_numbers"`
	PathwayID    string         `json:"pathway_id,omitempty"`
	Task         string         `json:"task,omitempty"`
	Model        string         `json:"model,omitempty"`
	Voice        string         `json:"voice,omitempty"`
	Language     string         `json:"language,omitempty"`
	Temperature  *float64       `json:"temperature,omitempty"`
	MaxDuration  *int           `json:"max_duration,omitempty"`
	ScheduleTime string         `json:"schedule_time,omitempty"`
	RetryConfig  map[string]any `json:"retry_config,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// SendBatchCallsResponse is returned by SendBatchCalls.
type SendBatchCallsResponse struct {
	APIResponse
	BatchID string   `json:"batch_id,omitempty"`
	CallIDs []string `json:"call_ids,omitempty"`
}

// SendBatchCalls places the same call to a list of phone numbers.
func (c *Client) SendBatchCalls(ctx context.Context, p SendBatchCallsParams) (*SendBatchCallsResponse, error) {
	if len(p.PhoneNumbers) == 0 {
		return nil, &MissingFieldError{Field: "phone_numbers"}
	}
	if p.PathwayID == "" && p.Task == "" {
		return nil, &MissingOneOfError{Fields: []string{"pathway_id", "task"}}
	}
	cleaned := make([]string, len(p.PhoneNumbers))
	for i, number := range p.PhoneNumbers {
		phone, err := normalizePhone(number)
		if err != nil {
			return nil, err
		}
		cleaned[i] = phone
	}
	p.PhoneNumbers = cleaned

	if p.Model == "" {
		p.Model = c.defaults.Model
	}
	if p.Voice == "" {
		p.Voice = c.defaults.Voice
	}
	if p.Language == "" {
		p.Language = c.defaults.Language
	}
	if p.Temperature == nil {
		d := c.defaults.Temperature
		p.Temperature = &d
	}
	if p.MaxDuration == nil {
		d := c.defaults.MaxDuration
		p.MaxDuration = &d
	}
	if err := checkEnum("model", p.Model, Models); err != nil {
		return nil, err
	}
	if err := checkRange("temperature", *p.Temperature, 0.0, 1.0); err != nil {
		return nil, err
	}

	var resp SendBatchCallsResponse
	if err := c.do(ctx, opSendBatch, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListBatchesParams filters the batch listing.
type ListBatchesParams struct {
	Limit     int      `schema:"limit,omitempty"`
	Offset    *int     `schema:"offset,omitempty"`
	Status    []string `schema:"status,omitempty"`
	DateRange string   `schema:"date_range,omitempty"`
	SortBy    string   `schema:"sort_by,omitempty"`
	SortOrder string   `schema:"sort_order,omitempty"`
}

// Batch is one entry in a batch listing or detail response.
type Batch struct {
	BatchID        string         `json:"batch_id,omitempty"`
	Label          string         `json:"label,omitempty"`
	Status         string         `json:"status,omitempty"`
	TotalCalls     int            `json:"total_calls,omitempty"`
	CompletedCalls int            `json:"completed_calls,omitempty"`
	FailedCalls    int            `json:"failed_calls,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	Calls          []Call         `json:"calls,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// ListBatchesResponse is returned by ListBatches.
type ListBatchesResponse struct {
	APIResponse
	Count   int     `json:"count,omitempty"`
	Batches []Batch `json:"batches,omitempty"`
}

// ListBatches returns call batches matching the given filters.
func (c *Client) ListBatches(ctx context.Context, p ListBatchesParams) (*ListBatchesResponse, error) {
	if p.Limit == 0 {
		p.Limit = c.defaults.Limit
	}
	if p.Limit < 1 {
		return nil, &RangeError{Field: "limit", Value: float64(p.Limit), Min: 1}
	}
	if p.Offset != nil && *p.Offset < 0 {
		return nil, &RangeError{Field: "offset", Value: float64(*p.Offset), Min: 0}
	}
	for _, s := range p.Status {
		if err := checkEnum("status", s, CallStatuses); err != nil {
			return nil, err
		}
	}
	if err := checkEnum("sort_order", p.SortOrder, SortOrders); err != nil {
		return nil, err
	}
	// sort_order only means anything alongside sort_by.
	if p.SortBy == "" {
		p.SortOrder = ""
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp ListBatchesResponse
	if err := c.do(ctx, opListBatches, nil, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatchDetailsParams narrows a batch detail request.
type BatchDetailsParams struct {
	IncludeCalls bool   `schema:"include_calls,omitempty"`
	CallStatus   string `schema:"call_status,omitempty"`
}

// BatchDetailsResponse is returned by GetBatchDetails.
type BatchDetailsResponse struct {
	APIResponse
	Batch
}

// GetBatchDetails returns the record for one batch, optionally with its
// individual calls.
func (c *Client) GetBatchDetails(ctx context.Context, batchID string, p BatchDetailsParams) (*BatchDetailsResponse, error) {
	if batchID == "" {
		return nil, &MissingFieldError{Field: "batch_id"}
	}
	if err := checkEnum("call_status", p.CallStatus, CallStatuses); err != nil {
		return nil, err
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp BatchDetailsResponse
	if err := c.do(ctx, opBatchDetails, vars{"batch_id": batchID}, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatchAnalysisParams narrows a batch analysis fetch.
type BatchAnalysisParams struct {
	IncludeCallDetails bool `schema:"include_call_details,omitempty"`
}

// BatchAnalysisResponse is returned by GetBatchAnalysis.
type BatchAnalysisResponse struct {
	APIResponse
	AnalysisID string         `json:"analysis_id,omitempty"`
	Results    map[string]any `json:"results,omitempty"`
	Calls      []Call         `json:"calls,omitempty"`
}

// GetBatchAnalysis fetches a previously requested batch analysis.
func (c *Client) GetBatchAnalysis(ctx context.Context, batchID, analysisID string, p BatchAnalysisParams) (*BatchAnalysisResponse, error) {
	if batchID == "" {
		return nil, &MissingFieldError{Field: "batch_id"}
	}
	if analysisID == "" {
		return nil, &MissingFieldError{Field: "analysis_id"}
	}
	query, err := c.encodeQuery(p)
	if err != nil {
		return nil, err
	}
	var resp BatchAnalysisResponse
	if err := c.do(ctx, opBatchAnalysis, vars{"batch_id": batchID, "analysis_id": analysisID}, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeBatchParams configures an analysis across every call in a batch.
type AnalyzeBatchParams struct {
	Goal          string           `json:"goal"`
	Questions     []string         `json:"questions"`
	Filters       map[string]any   `json:"filters,omitempty"`
	CustomMetrics []map[string]any `json:"custom_metrics,omitempty"`
}

// AnalyzeBatchResponse is returned by AnalyzeBatch.
type AnalyzeBatchResponse struct {
	APIResponse
	AnalysisID string `json:"analysis_id,omitempty"`
}

// AnalyzeBatch starts an AI analysis over a batch of completed calls.
func (c *Client) AnalyzeBatch(ctx context.Context, batchID string, p AnalyzeBatchParams) (*AnalyzeBatchResponse, error) {
	if batchID == "" {
		return nil, &MissingFieldError{Field: "batch_id"}
	}
	if p.Goal == "" {
		return nil, &MissingFieldError{Field: "goal"}
	}
	if len(p.Questions) == 0 {
		return nil, &MissingFieldError{Field: "questions"}
	}
	var resp AnalyzeBatchResponse
	if err := c.do(ctx, opAnalyzeBatch, vars{"batch_id": batchID}, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopBatchResponse is returned by StopBatch.
type StopBatchResponse struct {
	APIResponse
	StoppedCalls int `json:"stopped_calls,omitempty"`
}

// StopBatch stops every queued or in-progress call in a batch.
func (c *Client) StopBatch(ctx context.Context, batchID string) (*StopBatchResponse, error) {
	if batchID == "" {
		return nil, &MissingFieldError{Field: "batch_id"}
	}
	var resp StopBatchResponse
	if err := c.do(ctx, opStopBatch, vars{"batch_id": batchID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
