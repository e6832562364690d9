package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nhle/sitetrack/internal/model"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
	apiURL           = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
)

// Assistant talks to the Claude Messages API for the three site
// analysis operations: free-form chat, photo analysis, and progress
// prediction. It holds no conversation state; callers pass whatever
// context the operation needs.
type Assistant struct {
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
}

// New creates an assistant with the given configuration.
func New(apiKey, modelName string, maxTokens int) *Assistant {
	if modelName == "" {
		modelName = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Assistant{
		apiKey:    apiKey,
		model:     modelName,
		maxTokens: maxTokens,
		client:    &http.Client{},
	}
}

// Configured reports whether an API credential is present. The UI
// checks this before issuing a call so a missing key surfaces as a
// friendly message instead of a failed request.
func (a *Assistant) Configured() bool {
	return a.apiKey != ""
}

// Chat sends a free-form question about the project. projectContext is
// the serialized state summary from BuildProjectContext; it may be
// empty.
func (a *Assistant) Chat(ctx context.Context, message, projectContext string) (string, error) {
	system := "You are a construction site assistant for a homeowner tracking " +
		"their build. Answer questions about schedule, budget, and contractors " +
		"using the project data provided. Keep responses concise and practical."
	if projectContext != "" {
		system += "\n\nCurrent project data:\n" + projectContext
	}

	return a.callAPI(ctx, system, []apiContentBlock{
		{Type: "text", Text: message},
	})
}

// AnalyzeImage sends a base64-encoded site photo for analysis and
// returns a short description of the visible construction activity.
func (a *Assistant) AnalyzeImage(ctx context.Context, imageBase64, mediaType string) (string, error) {
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	system := "You are a construction site inspector. Describe the construction " +
		"activity visible in the photo in one short sentence, then note any " +
		"visible safety or quality concerns."

	return a.callAPI(ctx, system, []apiContentBlock{
		{
			Type: "image",
			Source: &apiImageSource{
				Type:      "base64",
				MediaType: mediaType,
				Data:      imageBase64,
			},
		},
		{Type: "text", Text: "What construction work is shown in this photo?"},
	})
}

// PredictProgress asks for a completion forecast from the timeline and
// budget figures.
func (a *Assistant) PredictProgress(
	ctx context.Context,
	steps []model.TimelineStep,
	budget, spent float64,
) (string, error) {
	var sb strings.Builder
	sb.WriteString("Timeline steps:\n")
	for _, step := range steps {
		sb.WriteString(fmt.Sprintf("- %s: %s", step.Label, step.Status))
		if step.Status == model.StepCurrent {
			sb.WriteString(fmt.Sprintf(" (%d%% done)", step.Progress))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Total budget: %.0f\n", budget))
	sb.WriteString(fmt.Sprintf("Spent so far: %.0f\n", spent))

	system := "You are a construction project analyst. Given the timeline and " +
		"budget figures, estimate when the project will finish and whether the " +
		"budget will hold. Give a short, direct assessment."

	return a.callAPI(ctx, system, []apiContentBlock{
		{Type: "text", Text: sb.String()},
	})
}

// callAPI makes a single request to the Claude Messages API and
// returns the concatenated text content.
func (a *Assistant) callAPI(
	ctx context.Context,
	system string,
	content []apiContentBlock,
) (string, error) {
	if !a.Configured() {
		return "", fmt.Errorf("no API key configured")
	}

	reqBody := apiRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    system,
		Messages: []apiMessage{
			{Role: "user", Content: content},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, apiURL, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	var textParts []string
	for _, block := range result.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}
	return strings.Join(textParts, ""), nil
}

// --- Claude API types ---

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string            `json:"role"`
	Content []apiContentBlock `json:"content"`
}

type apiContentBlock struct {
	Type string `json:"type"`

	// For text blocks
	Text string `json:"text,omitempty"`

	// For image blocks
	Source *apiImageSource `json:"source,omitempty"`
}

type apiImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type apiResponse struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Role       string            `json:"role"`
	Content    []apiContentBlock `json:"content"`
	Model      string            `json:"model"`
	StopReason string            `json:"stop_reason"`
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
