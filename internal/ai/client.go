// Package ai talks to the Gemini API: one structured plan-generation call
// (optionally streamed) and a streamed follow-up chat. The rest of the app
// treats the model as an opaque collaborator; nothing here interprets the
// plan beyond handing its text to the normalizer.
package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"bridgeout/pkg/models"
)

// Config holds the client settings, sourced from the app config.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int
	// Grounding enables Google Search grounding. The API rejects a response
	// schema combined with built-in tools, so grounding trades the schema
	// for web citations; the normalizer tolerates either shape.
	Grounding bool
}

// DefaultConfig returns sensible defaults for key-only construction.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
		Model:           "gemini-2.5-pro",
		Timeout:         10 * time.Minute,
		MaxOutputTokens: 65536,
		Grounding:       true,
	}
}

// Client is the Gemini REST client.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// New builds a Client. The HTTP client and logger are injected so tests can
// substitute them.
func New(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig("").BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig("").Model
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// GenerationResult is the raw outcome of one generation call: the text blob
// that should contain the plan JSON, plus the web citations side-channel.
type GenerationResult struct {
	Text      string
	Grounding []models.GroundingSource
}

// GeneratePlan runs a blocking generation call.
func (c *Client) GeneratePlan(ctx context.Context, profile *models.UserProfile) (*GenerationResult, error) {
	return c.GeneratePlanStream(ctx, profile, nil)
}

// GeneratePlanStream streams the generation response, invoking onChunk with
// each text fragment as it arrives (onChunk may be nil). The concatenated
// text and the deduplicated grounding citations are returned once the stream
// ends. No automatic retry: a failed generation is surfaced and the user
// resubmits.
func (c *Client) GeneratePlanStream(ctx context.Context, profile *models.UserProfile, onChunk func(string)) (*GenerationResult, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key not configured. Run: bridgeout config set --key gemini_api_key --value YOUR_KEY")
	}

	parts := []geminiPart{{Text: buildPlanPrompt(profile, time.Now())}}
	for _, doc := range profile.Documents {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: doc.MimeType,
			Data:     doc.Data,
		}})
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens:  c.cfg.MaxOutputTokens,
			ResponseMimeType: "application/json",
		},
	}
	if c.cfg.Grounding {
		reqBody.Tools = []geminiTool{{GoogleSearch: &geminiGoogleSearch{}}}
	} else {
		reqBody.GenerationConfig.ResponseSchema = planSchema()
	}

	start := time.Now()
	c.logger.Info("generating plan",
		zap.String("model", c.cfg.Model),
		zap.Int("documents", len(profile.Documents)),
		zap.Bool("grounding", c.cfg.Grounding))

	result, err := c.stream(ctx, reqBody, onChunk)
	if err != nil {
		return nil, err
	}

	c.logger.Info("generation complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(result.Text)),
		zap.Int("grounding_sources", len(result.Grounding)))
	return result, nil
}

// Chat sends a follow-up question with the running history and streams the
// reply through onChunk, returning the full text. Same accumulate-chunks
// pattern as generation.
func (c *Client) Chat(ctx context.Context, plan *models.Plan, profile *models.UserProfile, history []models.ChatMessage, message string, onChunk func(string)) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("Gemini API key not configured. Run: bridgeout config set --key gemini_api_key --value YOUR_KEY")
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: buildChatSystemPrompt(plan, profile)}},
		},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	result, err := c.stream(ctx, reqBody, onChunk)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// stream posts to the SSE endpoint and accumulates text parts and grounding
// chunks until the stream closes.
func (c *Client) stream(ctx context.Context, reqBody geminiRequest, onChunk func(string)) (*GenerationResult, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var text strings.Builder
	var grounding []models.GroundingSource
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}

		var chunk geminiResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if chunk.Error != nil {
			return nil, fmt.Errorf("Gemini API error: %s", chunk.Error.Message)
		}
		if len(chunk.Candidates) == 0 {
			continue
		}

		cand := chunk.Candidates[0]
		for _, part := range cand.Content.Parts {
			if part.Text == "" {
				continue
			}
			text.WriteString(part.Text)
			if onChunk != nil {
				onChunk(part.Text)
			}
		}

		if gm := cand.GroundingMetadata; gm != nil {
			for _, gc := range gm.GroundingChunks {
				if gc.Web == nil || gc.Web.URI == "" || seen[gc.Web.URI] {
					continue
				}
				seen[gc.Web.URI] = true
				grounding = append(grounding, models.GroundingSource{
					URI:   gc.Web.URI,
					Title: gc.Web.Title,
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("stream error: %w", err)
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return nil, fmt.Errorf("no completion returned")
	}
	return &GenerationResult{Text: out, Grounding: grounding}, nil
}
