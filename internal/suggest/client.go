package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rkas-pintar/backend/internal/types"
	"golang.org/x/time/rate"
)

// Client talks to an Ollama-compatible generation endpoint. Responses
// are cached by normalized input so repeated form edits do not hit the
// model again, and requests are rate limited to keep a busy operator
// from flooding a small local model.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	cache      *cache.Cache
	limiter    *rate.Limiter
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewClient(endpoint, model string) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		model:    model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		cache:   cache.New(15*time.Minute, 5*time.Minute),
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Suggest asks the model to categorize a purchase description. The
// caller is expected to fall back to neutral defaults on error.
func (c *Client) Suggest(ctx context.Context, description string) (Suggestion, error) {
	key := "line:" + strings.ToLower(strings.TrimSpace(description))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(Suggestion), nil
	}

	response, err := c.generate(ctx, fmt.Sprintf(linePrompt, description))
	if err != nil {
		return Suggestion{}, err
	}

	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return Suggestion{}, fmt.Errorf("no JSON found in model response")
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("parsing model JSON: %w", err)
	}

	suggestion.PlannedMonths = types.NormalizeMonths(suggestion.PlannedMonths)

	c.cache.Set(key, suggestion, cache.DefaultExpiration)
	return suggestion, nil
}

// Remediate asks the model for budget activities addressing weak report
// card indicators.
func (c *Client) Remediate(ctx context.Context, indicators []Indicator) ([]RemediationItem, error) {
	input, err := json.Marshal(indicators)
	if err != nil {
		return nil, err
	}

	key := "remediation:" + string(input)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]RemediationItem), nil
	}

	response, err := c.generate(ctx, fmt.Sprintf(remediationPrompt, string(input)))
	if err != nil {
		return nil, err
	}

	jsonStr := extractJSONArray(response)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON found in model response")
	}

	var items []RemediationItem
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, fmt.Errorf("parsing model JSON: %w", err)
	}

	c.cache.Set(key, items, cache.DefaultExpiration)
	return items, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model endpoint returned status %d: %s", resp.StatusCode, string(msg))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decoding model response: %w", err)
	}

	return genResp.Response, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}
