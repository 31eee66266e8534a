package responses

import (
	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/domain/ocr"
)

// OCRResponse is the payload of a successful receipt extraction.
type OCRResponse struct {
	Success bool         `json:"success"`
	Data    *ocr.Receipt `json:"data"`
}

// MapReceiptToResponse converts the domain receipt.
func MapReceiptToResponse(receipt *ocr.Receipt) OCRResponse {
	return OCRResponse{Success: true, Data: receipt}
}

// NewsResponse is the payload of a course news digest.
type NewsResponse struct {
	Success       bool           `json:"success"`
	CourseTitle   string         `json:"course_title"`
	TotalArticles int            `json:"total_articles"`
	Articles      []news.Article `json:"articles"`
}

// MapDigestToResponse converts the domain digest.
func MapDigestToResponse(digest *news.Digest) NewsResponse {
	articles := digest.Articles
	if articles == nil {
		articles = []news.Article{}
	}
	return NewsResponse{
		Success:       true,
		CourseTitle:   digest.CourseTitle,
		TotalArticles: len(articles),
		Articles:      articles,
	}
}
