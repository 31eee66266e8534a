package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"moneystocks/services/chat-api/internal/domain/ocr"
)

// OCRProcessingLog represents the database schema for receipt processing
// runs.
type OCRProcessingLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	PublicID          string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID            string         `gorm:"type:varchar(64);index;not null"`
	ImageURL          string         `gorm:"type:text;not null"`
	MerchantName      *string        `gorm:"type:varchar(256)"`
	TotalAmount       float64        `gorm:"not null"`
	Items             datatypes.JSON `gorm:"type:jsonb"`
	Confidence        float64        `gorm:"not null;default:0"`
	RawText           string         `gorm:"type:text"`
	SuggestedCategory *string        `gorm:"type:varchar(100)"`
}

// TableName specifies the table name for OCRProcessingLog.
func (OCRProcessingLog) TableName() string {
	return "ocr_processing_logs"
}

// EtoD converts database entity to domain model
func (l *OCRProcessingLog) EtoD() (*ocr.Log, error) {
	var items []ocr.Item
	if len(l.Items) > 0 && string(l.Items) != "null" {
		if err := json.Unmarshal(l.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items for ocr log %s: %w", l.PublicID, err)
		}
	}

	return &ocr.Log{
		ID:                l.ID,
		PublicID:          l.PublicID,
		UserID:            l.UserID,
		ImageURL:          l.ImageURL,
		MerchantName:      l.MerchantName,
		TotalAmount:       l.TotalAmount,
		Items:             items,
		Confidence:        l.Confidence,
		RawText:           l.RawText,
		SuggestedCategory: l.SuggestedCategory,
		CreatedAt:         l.CreatedAt,
	}, nil
}

// NewSchemaOCRProcessingLog creates a database entity from domain model
func NewSchemaOCRProcessingLog(l *ocr.Log) (*OCRProcessingLog, error) {
	items, err := json.Marshal(l.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	return &OCRProcessingLog{
		ID:                l.ID,
		PublicID:          l.PublicID,
		UserID:            l.UserID,
		ImageURL:          l.ImageURL,
		MerchantName:      l.MerchantName,
		TotalAmount:       l.TotalAmount,
		Items:             datatypes.JSON(items),
		Confidence:        l.Confidence,
		RawText:           l.RawText,
		SuggestedCategory: l.SuggestedCategory,
		CreatedAt:         l.CreatedAt,
	}, nil
}
