package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/llm"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

const (
	visionModel = "google/gemini-pro-vision"

	// Near-zero temperature: the model transcribes, it does not compose.
	extractionTemperature = 0.1
	extractionMaxTokens   = 1000
)

const extractionPrompt = `Analyze this receipt image and extract the following information in JSON format:
{
  "merchant_name": "nama toko/merchant",
  "total_amount": total_belanja_dalam_angka,
  "items": [
    {
      "name": "nama_item",
      "quantity": jumlah,
      "price": harga_satuan
    }
  ],
  "date": "tanggal_transaksi (YYYY-MM-DD jika ada)",
  "confidence": nilai_kepercayaan_0_sampai_1,
  "raw_text": "semua_text_yang_terbaca"
}

IMPORTANT: Return ONLY valid JSON, no other text.
If you cannot read certain fields, use null or empty array.
For Indonesian receipts, merchant_name and item names should be in Indonesian.`

// ProcessParams is the input of one receipt-processing run.
type ProcessParams struct {
	ImageURL string
	UserID   string
}

// Service turns receipt photos into structured expense data.
type Service interface {
	ProcessReceipt(ctx context.Context, params ProcessParams) (*Receipt, error)
}

// ServiceImpl provides the domain implementation.
type ServiceImpl struct {
	provider llm.Provider
	logs     LogRepository
	log      zerolog.Logger
}

// NewService wires dependencies.
func NewService(provider llm.Provider, logs LogRepository, log zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		provider: provider,
		logs:     logs,
		log:      log.With().Str("component", "ocr-service").Logger(),
	}
}

// ProcessReceipt runs the vision extraction, validates the result, suggests
// an expense category, and persists a processing log.
func (s *ServiceImpl) ProcessReceipt(ctx context.Context, params ProcessParams) (*Receipt, error) {
	if strings.TrimSpace(params.ImageURL) == "" || strings.TrimSpace(params.UserID) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "image_url and user_id are required", nil, "ocr-missing-fields")
	}

	temperature := extractionTemperature
	maxTokens := extractionMaxTokens
	resp, err := s.provider.CreateChatCompletion(ctx, llm.ChatCompletionRequest{
		Model: visionModel,
		Messages: []llm.ChatMessage{
			{
				Role: "user",
				Content: []llm.ContentPart{
					llm.TextContent(extractionPrompt),
					llm.ImageContent(params.ImageURL),
				},
			},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, err
	}

	content, ok := resp.FirstChoiceContent()
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "vision model returned no choices", nil, "ocr-empty-response")
	}

	extraction, err := parseExtraction(content)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to parse vision output")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "failed to parse OCR result", err, "ocr-parse-error")
	}

	if extraction.TotalAmount <= 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "could not extract valid total amount from receipt", nil, "ocr-invalid-total")
	}

	category := SuggestCategory(extraction.MerchantName, extraction.Items)

	record := &Log{
		PublicID:          fmt.Sprintf("ocr_%s", uuid.NewString()),
		UserID:            params.UserID,
		ImageURL:          params.ImageURL,
		MerchantName:      extraction.MerchantName,
		TotalAmount:       extraction.TotalAmount,
		Items:             extraction.Items,
		Confidence:        extraction.Confidence,
		RawText:           extraction.RawText,
		SuggestedCategory: &category,
		CreatedAt:         time.Now(),
	}
	if err := s.logs.Create(ctx, record); err != nil {
		return nil, err
	}

	return &Receipt{
		MerchantName:      extraction.MerchantName,
		TotalAmount:       extraction.TotalAmount,
		Items:             extraction.Items,
		Date:              extraction.Date,
		Confidence:        extraction.Confidence,
		SuggestedCategory: &category,
		LogID:             record.PublicID,
	}, nil
}

// parseExtraction pulls the outermost JSON object out of the model reply.
// Models routinely wrap the object in markdown fences or prose despite the
// prompt, so everything outside the first '{' and last '}' is discarded.
func parseExtraction(content string) (*Extraction, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var extraction Extraction
	if err := json.Unmarshal([]byte(content[start:end+1]), &extraction); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	return &extraction, nil
}
