package openrouter

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"moneystocks/services/chat-api/internal/domain/llm"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// Client implements the llm.Provider interface against the OpenRouter API.
type Client struct {
	httpClient *resty.Client
}

// Options configures the OpenRouter client. SiteURL and AppName feed the
// attribution headers OpenRouter uses for ranking and abuse tracking.
type Options struct {
	BaseURL string
	APIKey  string
	SiteURL string
	AppName string
	Timeout time.Duration
}

// NewClient creates a Resty-backed client.
func NewClient(opts Options) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(opts.BaseURL).
			SetHeader("Content-Type", "application/json").
			SetHeader("Authorization", "Bearer "+opts.APIKey).
			SetHeader("HTTP-Referer", opts.SiteURL).
			SetHeader("X-Title", opts.AppName).
			SetTimeout(opts.Timeout),
	}
}

// CreateChatCompletion calls OpenRouter /v1/chat/completions.
func (c *Client) CreateChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	var completion llm.ChatCompletionResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&completion).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "openrouter request failed", err, "openrouter-request-error")
	}

	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "openrouter api error: "+resp.Status(), nil, "openrouter-api-error")
	}
	return &completion, nil
}

// Ensure interface compliance.
var _ llm.Provider = (*Client)(nil)
