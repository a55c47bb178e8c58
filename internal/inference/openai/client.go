package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/learncoach/internal/inference"
	"github.com/at-ishikawa/learncoach/internal/store"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
	maxSentences     int
}

func NewClient(apiKey, model string, retryAttempts uint, maxSentences int) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	if maxSentences <= 0 {
		maxSentences = inference.DefaultMaxSentences
	}
	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
		maxSentences:     maxSentences,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Incomplete responses usually fail to decode
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Server errors and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

func (client *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("retrying OpenAI API call", "attempt", n+1, "error", err)
		}),
	)
}

// Summarize implements inference.Summarizer
func (client *Client) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	systemPrompt := fmt.Sprintf(`You summarize a learner's study notes.

Write a faithful summary of the notes in at most %d sentences.
- Keep the key terms, definitions, names and numbers used in the notes.
- Do not add facts that are not in the notes.
- Output plain text only: no headings, no bullet points, no markdown.`, client.maxSentences)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.2,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: text},
		},
	}

	var summary string
	if err := client.withRetry(ctx, func() error {
		content, err := client.complete(ctx, requestBody)
		if err != nil {
			return err
		}
		summary = strings.TrimSpace(content)
		return nil
	}); err != nil {
		return "", err
	}
	return summary, nil
}

// GenerateQuestions implements inference.QuestionGenerator
func (client *Client) GenerateQuestions(ctx context.Context, text string, count int) ([]store.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []store.Question{}, nil
	}
	if count <= 0 {
		count = inference.DefaultQuestionCount
	}

	systemPrompt := fmt.Sprintf(`You write multiple-choice self-test questions from a study summary.

Return ONLY a JSON array of exactly %d objects:
{"question": "<question text>", "options": ["<option>", ...], "answer": "<correct option>"}

RULES
- Each question has exactly 4 options.
- "answer" is copied verbatim from "options" and exactly one option is correct.
- Distractors are plausible but clearly wrong according to the summary.
- Ask about facts stated in the summary only.
- No text outside the JSON, no markdown code fences.`, count)

	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: text},
		},
	}

	var questions []store.Question
	if err := client.withRetry(ctx, func() error {
		content, err := client.complete(ctx, requestBody)
		if err != nil {
			return err
		}

		var decoded []store.Question
		if err := json.NewDecoder(strings.NewReader(stripCodeFence(content))).Decode(&decoded); err != nil {
			slog.Default().Error("Failed to parse OpenAI response as JSON",
				"count", count,
				"error", err)
			return fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
		}
		questions = decoded
		return nil
	}); err != nil {
		return nil, err
	}

	valid := inference.ValidQuestions(questions, count)
	if len(valid) < len(questions) {
		slog.Default().Warn("dropped malformed generated questions", "generated", len(questions), "kept", len(valid))
	}
	return valid, nil
}

func (client *Client) complete(ctx context.Context, requestBody ChatCompletionRequest) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", requestBody.Model,
		"usage", responseBody.Usage,
	)
	return content, nil
}

// stripCodeFence removes a surrounding ``` block some models add despite the prompt.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(content), "```"))
}
