package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the generateContent API asking for a JSON response
// constrained to the AIInsight schema. It reports every failure as an
// error; converting failures into the fallback insight is the insight
// service's job.
type GeminiClient struct {
	client *resty.Client
	model  string
	apiKey string
}

var _ domain.InsightGenerator = (*GeminiClient)(nil)

func NewGeminiClient(baseURL, apiKey, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &GeminiClient{client: c, model: model, apiKey: apiKey}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func insightSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"summary":     {Type: "STRING"},
			"suggestions": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
			"affirmation": {Type: "STRING"},
		},
		Required: []string{"summary", "suggestions", "affirmation"},
	}
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (*domain.AIInsight, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema(),
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String())
	}

	var gr generateResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return nil, fmt.Errorf("decode gemini envelope: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var insight domain.AIInsight
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &insight); err != nil {
		return nil, fmt.Errorf("decode insight payload: %w", err)
	}

	return &insight, nil
}
