package bland

import "context"

// Voice is one synthetic voice available to the account.
type Voice struct {
	VoiceID     string   `json:"voice_id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Public      bool     `json:"public,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ListVoicesResponse is returned by ListVoices.
type ListVoicesResponse struct {
	APIResponse
	Voices []Voice `json:"voices,omitempty"`
}

// ListVoices lists the voices available to the account.
func (c *Client) ListVoices(ctx context.Context) (*ListVoicesResponse, error) {
	var resp ListVoicesResponse
	if err := c.do(ctx, opListVoices, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VoiceDetailsResponse is returned by GetVoiceDetails.
type VoiceDetailsResponse struct {
	APIResponse
	Voice
}

// GetVoiceDetails returns one voice's metadata.
func (c *Client) GetVoiceDetails(ctx context.Context, voiceID string) (*VoiceDetailsResponse, error) {
	if voiceID == "" {
		return nil, &MissingFieldError{Field: "voice_id"}
	}
	var resp VoiceDetailsResponse
	if err := c.do(ctx, opVoiceDetails, vars{"voice_id": voiceID}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateAudioParams configures a text-to-speech sample. Speed must be
// within [0.5, 2.0] and pitch within [-20, 20] when set.
type GenerateAudioParams struct {
	Text     string  `json:"text"`
	VoiceID  string  `json:"voice_id,omitempty"`
	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Pitch    float64 `json:"pitch,omitempty"`
	Format   string  `json:"format,omitempty"`
}

// GenerateAudioResponse is returned by GenerateAudioSample.
type GenerateAudioResponse struct {
	APIResponse
	AudioURL string `json:"audio_url,omitempty"`
}

// GenerateAudioSample synthesizes a short audio clip for a voice.
func (c *Client) GenerateAudioSample(ctx context.Context, p GenerateAudioParams) (*GenerateAudioResponse, error) {
	if p.Text == "" {
		return nil, &MissingFieldError{Field: "text"}
	}
	if err := checkRange("speed", p.Speed, 0.5, 2.0); err != nil {
		return nil, err
	}
	if p.Pitch < -20 || p.Pitch > 20 {
		return nil, &RangeError{Field: "pitch", Value: p.Pitch, Min: -20, Max: 20}
	}
	var resp GenerateAudioResponse
	if err := c.do(ctx, opGenerateAudio, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublishVoiceParams publishes a cloned voice built from audio samples.
type PublishVoiceParams struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AudioFiles  []string `json:"audio_files"`
	Language    string   `json:"language,omitempty"`
	Gender      string   `json:"gender,omitempty"`
}

// PublishVoiceResponse is returned by PublishClonedVoice.
type PublishVoiceResponse struct {
	APIResponse
	VoiceID string `json:"voice_id,omitempty"`
}

// PublishClonedVoice publishes a cloned voice to the account.
func (c *Client) PublishClonedVoice(ctx context.Context, p PublishVoiceParams) (*PublishVoiceResponse, error) {
	if p.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if p.Description == "" {
		return nil, &MissingFieldError{Field: "description"}
	}
	if len(p.AudioFiles) == 0 {
		return nil, &MissingFieldError{Field: "audio_files"}
	}
	var resp PublishVoiceResponse
	if err := c.do(ctx, opPublishVoice, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
