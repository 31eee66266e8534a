package news

import (
	"context"
	"time"
)

// QueryConfig is the per-course NewsAPI query stored alongside the course.
// A country pins the query to top headlines; without one the wider archive
// search is used.
type QueryConfig struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Country  string `json:"country,omitempty"`
	Category string `json:"category,omitempty"`
	PageSize int    `json:"pageSize"`
}

// Course is an investment course with its news feed configuration.
type Course struct {
	ID        uint
	PublicID  string
	Title     string
	Query     QueryConfig
	CreatedAt time.Time
}

// Article is one reshaped NewsAPI article.
type Article struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"image_url"`
	PublishedAt string  `json:"published_at"`
	Source      string  `json:"source"`
	Author      *string `json:"author"`
}

// Digest is the news payload served for one course.
type Digest struct {
	CourseTitle string    `json:"course_title"`
	Articles    []Article `json:"articles"`
}

// CourseRepository looks up course metadata.
type CourseRepository interface {
	FindByPublicID(ctx context.Context, publicID string) (*Course, error)
}

// Client fetches articles from the upstream news provider.
type Client interface {
	Fetch(ctx context.Context, query QueryConfig) ([]Article, error)
}

// Cache stores digests between requests so repeated course opens do not burn
// the upstream quota. Implementations must treat a miss as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*Digest, bool, error)
	Set(ctx context.Context, key string, digest *Digest, ttl time.Duration) error
}
