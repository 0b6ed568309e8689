package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/scanvocab/scanvocab/internal/extraction"
	"resty.dev/v3"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "gpt-4o-mini"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

// Message content is a list of parts so one user message can carry the
// instruction text and the photo together.
type Message struct {
	Role    Role          `json:"role"`
	Content []ContentPart `json:"content"`
}

type ContentPart struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *ImageURL   `json:"image_url,omitempty"`
}

type ContentType string

const (
	ContentTypeText     ContentType = "text"
	ContentTypeImageURL ContentType = "image_url"
)

type ImageURL struct {
	URL string `json:"url"`
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

// Extract implements the extraction.Client interface
func (client *Client) Extract(ctx context.Context, request extraction.Request) ([]extraction.ExtractedWord, error) {
	var result []extraction.ExtractedWord
	if err := retry.Do(
		func() error {
			words, err := client.extract(ctx, request)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = words
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

const systemPrompt = `You are a vocabulary extractor for a Japanese learner of English. You receive one photo of printed or handwritten text and return the English vocabulary worth studying from it.

For each word, produce:
- "english": the word or short phrase as it appears (lemma form)
- "japanese": its Japanese translation fitting how the photo uses it
- "distractors": exactly 3 Japanese translations that are plausible but WRONG for this word, for multiple choice options
- "example_sentence": a short English sentence using the word (from the photo if one exists, otherwise write one)
- "example_sentence_ja": the Japanese translation of that sentence

RULES:
- Skip proper nouns, numbers and words a beginner already knows (a, the, is) unless the learner level says otherwise.
- Distractors must be real Japanese words of the same register, never the correct translation or a close synonym of it.
- If the photo contains no extractable English text, return an empty "words" array.

OUTPUT FORMAT (JSON only):
{
  "words": [
    {"english": "...", "japanese": "...", "distractors": ["...", "...", "..."], "example_sentence": "...", "example_sentence_ja": "..."}
  ]
}

Do NOT include any text outside the JSON.`

func (client *Client) getRequestBody(request extraction.Request) ChatCompletionRequest {
	hints := ""
	if request.Mode != "" {
		hints += fmt.Sprintf("\nExtraction mode: %s.", request.Mode)
	}
	if request.Level != "" {
		hints += fmt.Sprintf("\nTarget learner level: %s.", request.Level)
	}

	userMessage := fmt.Sprintf(`Extract the vocabulary words from the attached photo.%s`, hints)

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.3,
		Messages: []Message{
			{
				Role:    RoleSystem,
				Content: []ContentPart{{Type: ContentTypeText, Text: systemPrompt}},
			},
			{
				Role: RoleUser,
				Content: []ContentPart{
					{Type: ContentTypeText, Text: userMessage},
					{Type: ContentTypeImageURL, ImageURL: &ImageURL{URL: dataURL(request.Image)}},
				},
			},
		},
	}
}

// dataURL inlines the photo for the vision endpoint. The content type
// is sniffed from the payload so callers can pass jpeg and png alike.
func dataURL(image []byte) string {
	return "data:" + http.DetectContentType(image) + ";base64," + base64.StdEncoding.EncodeToString(image)
}

type extractionResult struct {
	Words []extraction.ExtractedWord `json:"words"`
}

func (client *Client) extract(ctx context.Context, request extraction.Request) ([]extraction.ExtractedWord, error) {
	if len(request.Image) == 0 {
		return nil, errors.New("empty image payload")
	}

	requestBody := client.getRequestBody(request)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return nil, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai extraction response",
		"model", responseBody.Model,
		"usage", responseBody.Usage,
		"content", content,
	)

	var decoded extractionResult
	if err := json.NewDecoder(strings.NewReader(extractJSONObject(content))).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	return decoded.Words, nil
}
