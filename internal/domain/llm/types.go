package llm

import "context"

// Provider defines the contract for calling the model-routing API's
// /v1/chat/completions endpoint.
type Provider interface {
	CreateChatCompletion(reqCtx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// ChatCompletionRequest mirrors the OpenAI-compatible request shape exposed by
// OpenRouter.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// ChatMessage represents a single message in the conversation history.
// Content is either a plain string or a []ContentPart for multimodal turns.
type ChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// ContentPart is one element of a multimodal message content array.
type ContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *ImageURLPart `json:"image_url,omitempty"`
}

// ImageURLPart wraps the image reference for image_url content parts.
type ImageURLPart struct {
	URL string `json:"url"`
}

// TextContent builds a text content part.
func TextContent(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImageContent builds an image_url content part.
func ImageContent(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURLPart{URL: url}}
}

// ChatCompletionResponse captures the completion payload.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *Usage                 `json:"usage,omitempty"`
}

// ChatCompletionChoice represents one completion choice.
type ChatCompletionChoice struct {
	Index        int                  `json:"index"`
	Message      ChatCompletionResult `json:"message"`
	FinishReason string               `json:"finish_reason"`
}

// ChatCompletionResult is the assistant message returned by the model.
type ChatCompletionResult struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage contains token accounting metadata.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstChoiceContent extracts the text of the first choice, if any.
func (r *ChatCompletionResponse) FirstChoiceContent() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}
