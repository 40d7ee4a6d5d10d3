package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHandwryttenBaseURL = "https://api.handwrytten.com/v1"

// Provider font ids for the three handwriting styles the front-end offers.
// Anything unrecognized falls back to casual.
var handwritingFonts = map[string]string{
	"casual":  "font_jeremy",
	"elegant": "font_arlene",
	"playful": "font_tina",
}

// HandwryttenClient wraps the external handwriting fulfillment API. The
// service is opaque: one JSON request over HTTPS, a 30 second timeout and no
// retry. A failed attempt is surfaced to the caller, which applies the
// pending-fallback policy.
type HandwryttenClient struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

func NewHandwryttenClient(apiKey, apiSecret string) *HandwryttenClient {
	return &HandwryttenClient{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   defaultHandwryttenBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewHandwryttenClientWithBaseURL exists for tests that point the client at a
// local stub server.
func NewHandwryttenClientWithBaseURL(apiKey, apiSecret, baseURL string) *HandwryttenClient {
	c := NewHandwryttenClient(apiKey, apiSecret)
	c.baseURL = baseURL
	return c
}

// LetterOptions carries the optional knobs of a submission that are forwarded
// to the provider.
type LetterOptions struct {
	HandwritingStyle string
	ReturnAddress    string
	SenderName       string
}

// FulfillmentResult is the provider's answer for an accepted letter.
type FulfillmentResult struct {
	OrderID    string
	Status     string
	PreviewURL string
}

type handwryttenRecipient struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country"`
}

type handwryttenRequest struct {
	APIKey        string               `json:"apiKey"`
	APISecret     string               `json:"apiSecret"`
	Recipient     handwryttenRecipient `json:"recipient"`
	Message       string               `json:"message"`
	Font          string               `json:"font"`
	SenderName    string               `json:"sender_name,omitempty"`
	ReturnAddress string               `json:"return_address,omitempty"`
}

type handwryttenResponse struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	PreviewURL string `json:"preview_url"`
}

// SendLetter submits one letter to the provider. The stored free-text address
// is structured through ParseAddress before shaping the payload.
func (c *HandwryttenClient) SendLetter(ctx context.Context, recipientName, address, message string, opts LetterOptions) (FulfillmentResult, error) {
	parsed, err := ParseAddress(address)
	if err != nil {
		return FulfillmentResult{}, fmt.Errorf("handwrytten: %w", err)
	}
	if parsed.Name == "" {
		parsed.Name = recipientName
	}

	payload := handwryttenRequest{
		APIKey:    c.apiKey,
		APISecret: c.apiSecret,
		Recipient: handwryttenRecipient{
			Name:     parsed.Name,
			Address1: parsed.Address1,
			Address2: parsed.Address2,
			City:     parsed.City,
			State:    parsed.State,
			Zip:      parsed.Zip,
			Country:  parsed.Country,
		},
		Message:       message,
		Font:          FontForStyle(opts.HandwritingStyle),
		SenderName:    opts.SenderName,
		ReturnAddress: opts.ReturnAddress,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return FulfillmentResult{}, fmt.Errorf("handwrytten: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/letters/create", bytes.NewReader(body))
	if err != nil {
		return FulfillmentResult{}, fmt.Errorf("handwrytten: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FulfillmentResult{}, fmt.Errorf("handwrytten: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return FulfillmentResult{}, fmt.Errorf("handwrytten: remote error (%d): %s", resp.StatusCode, string(b))
	}

	var decoded handwryttenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return FulfillmentResult{}, fmt.Errorf("handwrytten: decode response: %w", err)
	}

	return FulfillmentResult{
		OrderID:    decoded.OrderID,
		Status:     decoded.Status,
		PreviewURL: decoded.PreviewURL,
	}, nil
}

// FontForStyle maps a requested handwriting style to a provider font id.
func FontForStyle(style string) string {
	if font, ok := handwritingFonts[style]; ok {
		return font
	}
	return handwritingFonts["casual"]
}
