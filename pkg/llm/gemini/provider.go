package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bevgenie-be/pkg/llm"
)

const (
	defaultModel = "gemini-1.5-flash"
	endpointFmt  = "https://generativelanguage.googleapis.com/v1/models/%s:generateContent"
)

type chatPart struct {
	Text string `json:"text"`
}

type chatContent struct {
	Parts []chatPart `json:"parts"`
	Role  string     `json:"role"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type chatRequest struct {
	Contents         []chatContent     `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type chatResponse struct {
	Candidates []struct {
		Content chatContent `json:"content"`
	} `json:"candidates"`
}

// Provider calls the Gemini generateContent REST API.
type Provider struct {
	apiKey string
	model  string
	client *http.Client
}

func NewProvider(apiKey string) *Provider {
	return NewProviderWithModel(apiKey, defaultModel)
}

// NewProviderWithModel overrides the default model for every call that does
// not set its own via options.
func NewProviderWithModel(apiKey, model string) *Provider {
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		apiKey: apiKey,
		model:  model,
		// Per-request deadlines come from the caller's context; this is a
		// hard upper bound against leaked requests.
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := applyOptions(options)

	contents := make([]chatContent, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		// Gemini only knows "user" and "model"; system turns are folded in
		// as user content.
		if role != "model" {
			role = "user"
		}
		contents = append(contents, chatContent{
			Parts: []chatPart{{Text: msg.Content}},
			Role:  role,
		})
	}

	return p.call(ctx, contents, opts)
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (p *Provider) call(ctx context.Context, contents []chatContent, opts llm.Options) (string, error) {
	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	payload := chatRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf(endpointFmt, model),
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes chatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidate list in gemini response")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func applyOptions(options []llm.Option) llm.Options {
	opts := llm.Options{Temperature: 0.7}
	for _, o := range options {
		o(&opts)
	}
	return opts
}
