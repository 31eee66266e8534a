package ocr

import (
	"context"
	"time"
)

// Item is one line read off a receipt.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Extraction is the structured payload the vision model is asked to produce.
type Extraction struct {
	MerchantName *string `json:"merchant_name"`
	TotalAmount  float64 `json:"total_amount"`
	Items        []Item  `json:"items"`
	Date         *string `json:"date"`
	Confidence   float64 `json:"confidence"`
	RawText      string  `json:"raw_text"`
}

// Receipt is the processed result returned to the client.
type Receipt struct {
	MerchantName      *string `json:"merchant_name"`
	TotalAmount       float64 `json:"total_amount"`
	Items             []Item  `json:"items"`
	Date              *string `json:"date"`
	Confidence        float64 `json:"confidence"`
	SuggestedCategory *string `json:"suggested_category"`
	LogID             string  `json:"ocr_log_id"`
}

// Log is the persisted record of one processing run, kept for analytics and
// abuse review.
type Log struct {
	ID                uint
	PublicID          string
	UserID            string
	ImageURL          string
	MerchantName      *string
	TotalAmount       float64
	Items             []Item
	Confidence        float64
	RawText           string
	SuggestedCategory *string
	CreatedAt         time.Time
}

// LogRepository persists processing logs.
type LogRepository interface {
	Create(ctx context.Context, log *Log) error
}
