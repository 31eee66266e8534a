package newsapi

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// Client fetches articles from newsapi.org.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient creates a Resty-backed client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
		apiKey: apiKey,
	}
}

type articlePayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
	Author      *string `json:"author"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type newsResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []articlePayload `json:"articles"`
}

// Fetch queries top-headlines when the config pins a country, the archive
// search otherwise.
func (c *Client) Fetch(ctx context.Context, query news.QueryConfig) ([]news.Article, error) {
	params := map[string]string{
		"q":        query.Query,
		"language": query.Language,
		"pageSize": strconv.Itoa(query.PageSize),
		"sortBy":   "publishedAt",
		"apiKey":   c.apiKey,
	}
	endpoint := "/v2/everything"
	if query.Country != "" {
		endpoint = "/v2/top-headlines"
		params["country"] = query.Country
	}
	if query.Category != "" {
		params["category"] = query.Category
	}

	var payload newsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&payload).
		Get(endpoint)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "news api request failed", err, "newsapi-request-error")
	}
	if resp.IsError() || payload.Status != "ok" {
		msg := payload.Message
		if msg == "" {
			msg = resp.Status()
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "news api error: "+msg, nil, "newsapi-api-error")
	}

	articles := make([]news.Article, len(payload.Articles))
	for i, a := range payload.Articles {
		articles[i] = news.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
			Author:      a.Author,
		}
	}
	return articles, nil
}

// Ensure interface compliance.
var _ news.Client = (*Client)(nil)
