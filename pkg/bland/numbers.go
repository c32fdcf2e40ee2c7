package bland

import "context"

// InboundNumber is a provider-hosted phone number that answers calls.
type InboundNumber struct {
	PhoneNumber string  `json:"phone_number,omitempty"`
	PathwayID   string  `json:"pathway_id,omitempty"`
	Task        string  `json:"task,omitempty"`
	Model       string  `json:"model,omitempty"`
	Voice       string  `json:"voice,omitempty"`
	Language    string  `json:"language,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxDuration int     `json:"max_duration,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type purchaseNumberBody struct {
	AreaCode string `json:"area_code,omitempty"`
	Country  string `json:"country,omitempty"`
}

// PurchaseNumberResponse is returned by PurchasePhoneNumber.
type PurchaseNumberResponse struct {
	APIResponse
	PhoneNumber string `json:"phone_number,omitempty"`
}

// PurchasePhoneNumber buys an inbound number, optionally constrained to
// an area code and country.
func (c *Client) PurchasePhoneNumber(ctx context.Context, areaCode, country string) (*PurchaseNumberResponse, error) {
	var resp PurchaseNumberResponse
	if err := c.do(ctx, opPurchaseNumber, nil, purchaseNumberBody{AreaCode: areaCode, Country: country}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListNumbersResponse is returned by the inbound and outbound listings.
type ListNumbersResponse struct {
	APIResponse
	InboundNumbers  []InboundNumber `json:"inbound_numbers,omitempty"`
	OutboundNumbers []string        `json:"outbound_numbers,omitempty"`
}

// ListInboundNumbers lists the account's inbound numbers.
func (c *Client) ListInboundNumbers(ctx context.Context) (*ListNumbersResponse, error) {
	var resp ListNumbersResponse
	if err := c.do(ctx, opListInbound, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOutboundNumbers lists the numbers calls may be placed from.
func (c *Client) ListOutboundNumbers(ctx context.Context) (*ListNumbersResponse, error) {
	var resp ListNumbersResponse
	if err := c.do(ctx, opListOutbound, nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InboundDetailsResponse is returned by GetInboundDetails.
type InboundDetailsResponse struct {
	APIResponse
	InboundNumber
}

// GetInboundDetails returns the configuration of one inbound number.
func (c *Client) GetInboundDetails(ctx context.Context, phoneNumber string) (*InboundDetailsResponse, error) {
	if phoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	var resp InboundDetailsResponse
	if err := c.do(ctx, opInboundDetails, vars{"phone_number": phone}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateInboundParams reconfigures how an inbound number answers.
type UpdateInboundParams struct {
	PhoneNumber string  `json:"phone_number"`
	PathwayID   string  `json:"pathway_id,omitempty"`
	Task        string  `json:"task,omitempty"`
	Model       string  `json:"model,omitempty"`
	Voice       string  `json:"voice,omitempty"`
	Language    string  `json:"language,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxDuration int     `json:"max_duration,omitempty"`
}

// UpdateInboundResponse is returned by inbound number mutations.
type UpdateInboundResponse struct {
	APIResponse
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpdateInboundDetails reconfigures an inbound number.
func (c *Client) UpdateInboundDetails(ctx context.Context, p UpdateInboundParams) (*UpdateInboundResponse, error) {
	if p.PhoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	phone, err := normalizePhone(p.PhoneNumber)
	if err != nil {
		return nil, err
	}
	p.PhoneNumber = phone
	if err := checkEnum("model", p.Model, Models); err != nil {
		return nil, err
	}
	if err := checkRange("temperature", p.Temperature, 0.0, 1.0); err != nil {
		return nil, err
	}
	var resp UpdateInboundResponse
	if err := c.do(ctx, opUpdateInbound, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteInboundNumber releases an inbound number.
func (c *Client) DeleteInboundNumber(ctx context.Context, phoneNumber string) (*UpdateInboundResponse, error) {
	if phoneNumber == "" {
		return nil, &MissingFieldError{Field: "phone_number"}
	}
	phone, err := normalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	var resp UpdateInboundResponse
	if err := c.do(ctx, opDeleteInbound, vars{"phone_number": phone}, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadInboundParams registers a list of inbound numbers with a shared
// answering configuration.
type UploadInboundParams struct {
	PhoneNumbers []string `json:"phone_numbers"`
	PathwayID    string   `json:"pathway_id,omitempty"`
	Task         string   `json:"task,omitempty"`
	Model        string   `json:"model,omitempty"`
	Voice        string   `json:"voice,omitempty"`
	Language     string   `json:"language,omitempty"`
	Temperature  float64  `json:"temperature,omitempty"`
	MaxDuration  int      `json:"max_duration,omitempty"`
}

// UploadInboundResponse is returned by UploadInboundNumbers.
type UploadInboundResponse struct {
	APIResponse
	Uploaded int `json:"uploaded,omitempty"`
}

// UploadInboundNumbers registers multiple inbound numbers at once.
func (c *Client) UploadInboundNumbers(ctx context.Context, p UploadInboundParams) (*UploadInboundResponse, error) {
	if len(p.PhoneNumbers) == 0 {
		return nil, &MissingFieldError{Field: "phone_numbers"}
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
	if err := checkEnum("model", p.Model, Models); err != nil {
		return nil, err
	}
	if err := checkRange("temperature", p.Temperature, 0.0, 1.0); err != nil {
		return nil, err
	}
	var resp UploadInboundResponse
	if err := c.do(ctx, opUploadInbound, nil, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
