// Package recognition extracts numeric meter readings from photos using the
// Gemini generateContent API.
package recognition

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-pro"
	defaultTimeout = 30 * time.Second
)

// Config carries the provider settings. It is built once at startup and
// passed in; the client never reads the environment itself.
type Config struct {
	APIKey  string
	Model   string        // defaults to gemini-1.5-pro
	BaseURL string        // defaults to the public Gemini endpoint
	Timeout time.Duration // defaults to 30s
}

// Client asks the recognition provider for the consumption value shown on a
// meter photo. It implements measure.ValueExtractor.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// kindWords maps meter kinds to the word used in the prompt.
var kindWords = map[string]string{
	"water": "água",
	"gas":   "gás",
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ExtractValue sends the photo to the provider with a prompt naming the meter
// kind and parses the first numeric token out of the free-text answer.
func (c *Client) ExtractValue(ctx context.Context, image []byte, mimeType, meterKind string) (decimal.Decimal, error) {
	text, err := c.generate(ctx, image, mimeType, meterKind)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return parseConsumption(text)
}

func (c *Client) generate(ctx context.Context, image []byte, mimeType, meterKind string) (string, error) {
	kind, ok := kindWords[meterKind]
	if !ok {
		kind = meterKind
	}

	payload := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: fmt.Sprintf("Qual o consumo de %s nessa imagem fornecida.", kind)},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling recognition provider: %w", err)
	}
	defer resp.Body.Close()

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil && decoded.Error.Message != "" {
			return "", fmt.Errorf("recognition provider: %s", decoded.Error.Message)
		}

		return "", fmt.Errorf("recognition provider returned status %d", resp.StatusCode)
	}

	var sb strings.Builder

	for _, cand := range decoded.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("recognition provider returned an empty answer")
	}

	return sb.String(), nil
}
