package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"moneystocks/services/chat-api/internal/domain/news"
)

// Course represents the database schema for investment courses. Only the
// news feed configuration lives here; course content is served elsewhere.
type Course struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	PublicID    string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title       string         `gorm:"type:varchar(256);not null"`
	QueryConfig datatypes.JSON `gorm:"type:jsonb;not null"`
}

// TableName specifies the table name for Course.
func (Course) TableName() string {
	return "courses"
}

// EtoD converts database entity to domain model
func (c *Course) EtoD() (*news.Course, error) {
	var query news.QueryConfig
	if err := json.Unmarshal(c.QueryConfig, &query); err != nil {
		return nil, fmt.Errorf("decode query config for course %s: %w", c.PublicID, err)
	}

	return &news.Course{
		ID:        c.ID,
		PublicID:  c.PublicID,
		Title:     c.Title,
		Query:     query,
		CreatedAt: c.CreatedAt,
	}, nil
}

// NewSchemaCourse creates a database entity from domain model
func NewSchemaCourse(c *news.Course) (*Course, error) {
	bytes, err := json.Marshal(c.Query)
	if err != nil {
		return nil, fmt.Errorf("encode query config: %w", err)
	}

	return &Course{
		ID:          c.ID,
		PublicID:    c.PublicID,
		Title:       c.Title,
		QueryConfig: datatypes.JSON(bytes),
		CreatedAt:   c.CreatedAt,
	}, nil
}
