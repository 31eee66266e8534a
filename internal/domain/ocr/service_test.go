package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/llm"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

type mockProvider struct {
	CreateChatCompletionFunc func(ctx context.Context, req llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error)
}

func (m *mockProvider) CreateChatCompletion(ctx context.Context, req llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	return m.CreateChatCompletionFunc(ctx, req)
}

type mockLogRepo struct {
	CreateFunc func(ctx context.Context, log *Log) error
}

func (m *mockLogRepo) Create(ctx context.Context, log *Log) error {
	return m.CreateFunc(ctx, log)
}

func visionReply(content string) *llm.ChatCompletionResponse {
	return &llm.ChatCompletionResponse{
		Choices: []llm.ChatCompletionChoice{
			{Message: llm.ChatCompletionResult{Role: "assistant", Content: content}},
		},
	}
}

const receiptJSON = `{
  "merchant_name": "Indomaret Sudirman",
  "total_amount": 47500,
  "items": [{"name": "Aqua 600ml", "quantity": 2, "price": 4000}],
  "date": "2026-08-29",
  "confidence": 0.92,
  "raw_text": "INDOMARET SUDIRMAN..."
}`

func TestProcessReceipt(t *testing.T) {
	var saved *Log
	provider := &mockProvider{
		CreateChatCompletionFunc: func(_ context.Context, req llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
			if req.Model != visionModel {
				t.Errorf("model = %s, want %s", req.Model, visionModel)
			}
			if req.Temperature == nil || *req.Temperature != extractionTemperature {
				t.Error("extraction temperature not pinned")
			}
			parts, ok := req.Messages[0].Content.([]llm.ContentPart)
			if !ok || len(parts) != 2 || parts[1].Type != "image_url" {
				t.Error("prompt is not text + image_url content parts")
			}
			return visionReply(receiptJSON), nil
		},
	}
	logs := &mockLogRepo{
		CreateFunc: func(_ context.Context, log *Log) error {
			saved = log
			return nil
		},
	}

	svc := NewService(provider, logs, zerolog.Nop())
	receipt, err := svc.ProcessReceipt(context.Background(), ProcessParams{
		ImageURL: "https://cdn.example.com/struk.jpg",
		UserID:   "user-1",
	})
	if err != nil {
		t.Fatalf("ProcessReceipt() error = %v", err)
	}

	if receipt.TotalAmount != 47500 {
		t.Errorf("total = %v, want 47500", receipt.TotalAmount)
	}
	if receipt.SuggestedCategory == nil || *receipt.SuggestedCategory != "Belanja" {
		t.Errorf("category = %v, want Belanja for an Indomaret receipt", receipt.SuggestedCategory)
	}
	if saved == nil {
		t.Fatal("processing log not persisted")
	}
	if saved.UserID != "user-1" || saved.TotalAmount != 47500 {
		t.Errorf("persisted log = %+v", saved)
	}
	if receipt.LogID != saved.PublicID {
		t.Error("response log id does not match the persisted log")
	}
}

func TestProcessReceiptToleratesMarkdownFences(t *testing.T) {
	provider := &mockProvider{
		CreateChatCompletionFunc: func(_ context.Context, _ llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
			return visionReply("Here is the result:\n```json\n" + receiptJSON + "\n```"), nil
		},
	}
	logs := &mockLogRepo{CreateFunc: func(_ context.Context, _ *Log) error { return nil }}

	svc := NewService(provider, logs, zerolog.Nop())
	receipt, err := svc.ProcessReceipt(context.Background(), ProcessParams{
		ImageURL: "https://cdn.example.com/struk.jpg",
		UserID:   "user-1",
	})
	if err != nil {
		t.Fatalf("ProcessReceipt() error = %v, fenced JSON must still parse", err)
	}
	if receipt.MerchantName == nil || *receipt.MerchantName != "Indomaret Sudirman" {
		t.Errorf("merchant = %v", receipt.MerchantName)
	}
}

func TestProcessReceiptRejectsNonPositiveTotal(t *testing.T) {
	provider := &mockProvider{
		CreateChatCompletionFunc: func(_ context.Context, _ llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
			return visionReply(`{"merchant_name": null, "total_amount": 0, "items": [], "date": null, "confidence": 0.1, "raw_text": ""}`), nil
		},
	}
	logs := &mockLogRepo{
		CreateFunc: func(_ context.Context, _ *Log) error {
			t.Fatal("invalid extractions must not be logged")
			return nil
		},
	}

	svc := NewService(provider, logs, zerolog.Nop())
	_, err := svc.ProcessReceipt(context.Background(), ProcessParams{
		ImageURL: "https://cdn.example.com/struk.jpg",
		UserID:   "user-1",
	})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Errorf("err = %v, want an external error", err)
	}
}

func TestProcessReceiptUnparsableOutput(t *testing.T) {
	provider := &mockProvider{
		CreateChatCompletionFunc: func(_ context.Context, _ llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
			return visionReply("I could not read this image, sorry."), nil
		},
	}
	logs := &mockLogRepo{CreateFunc: func(_ context.Context, _ *Log) error { return nil }}

	svc := NewService(provider, logs, zerolog.Nop())
	_, err := svc.ProcessReceipt(context.Background(), ProcessParams{
		ImageURL: "https://cdn.example.com/struk.jpg",
		UserID:   "user-1",
	})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Errorf("err = %v, want an external error", err)
	}
}

func TestProcessReceiptProviderError(t *testing.T) {
	provider := &mockProvider{
		CreateChatCompletionFunc: func(_ context.Context, _ llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
			return nil, errors.New("upstream 502")
		},
	}
	svc := NewService(provider, &mockLogRepo{}, zerolog.Nop())
	if _, err := svc.ProcessReceipt(context.Background(), ProcessParams{
		ImageURL: "https://cdn.example.com/struk.jpg",
		UserID:   "user-1",
	}); err == nil {
		t.Fatal("provider failure must surface, there is no fallback receipt")
	}
}

func TestProcessReceiptValidation(t *testing.T) {
	svc := NewService(&mockProvider{}, &mockLogRepo{}, zerolog.Nop())
	_, err := svc.ProcessReceipt(context.Background(), ProcessParams{ImageURL: "", UserID: "user-1"})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("err = %v, want a validation error", err)
	}
}

func TestSuggestCategory(t *testing.T) {
	merchant := func(s string) *string { return &s }

	tests := []struct {
		name     string
		merchant *string
		items    []Item
		want     string
	}{
		{name: "merchant keyword", merchant: merchant("Kopi Kenangan"), want: "Makanan & Minuman"},
		{name: "item keyword", merchant: merchant("PT Maju"), items: []Item{{Name: "Bensin Pertamax"}}, want: "Transportasi"},
		{name: "case insensitive", merchant: merchant("ALFAMART"), want: "Belanja"},
		{name: "pharmacy", merchant: merchant("Apotek K-24"), want: "Kesehatan"},
		{name: "no match falls through", merchant: merchant("CV Tanpa Nama"), want: "Lainnya"},
		{name: "nil merchant", merchant: nil, items: []Item{{Name: "Token PLN"}}, want: "Tagihan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestCategory(tt.merchant, tt.items); got != tt.want {
				t.Errorf("SuggestCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}
