package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/intent"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/handlers"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// MockChatService is a mock implementation of chat.Service for testing.
type MockChatService struct {
	ChatFunc               func(ctx context.Context, params chat.ChatParams) (*chat.ChatResult, error)
	CreateConversationFunc func(ctx context.Context, params chat.CreateConversationParams) (*chat.Conversation, error)
	ListMessagesFunc       func(ctx context.Context, conversationPublicID string) ([]chat.Message, error)
}

func (m *MockChatService) Chat(ctx context.Context, params chat.ChatParams) (*chat.ChatResult, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockChatService) CreateConversation(ctx context.Context, params chat.CreateConversationParams) (*chat.Conversation, error) {
	if m.CreateConversationFunc != nil {
		return m.CreateConversationFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockChatService) ListMessages(ctx context.Context, conversationPublicID string) ([]chat.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, conversationPublicID)
	}
	return nil, nil
}

func newChatRouter(service chat.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := handlers.NewChatHandler(service, zerolog.Nop())
	engine.POST("/v1/chat", handler.Chat)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestChatHandlerSuccess(t *testing.T) {
	label := intent.RecordTransaction
	service := &MockChatService{
		ChatFunc: func(_ context.Context, params chat.ChatParams) (*chat.ChatResult, error) {
			if params.ConversationID != "conv_1" {
				t.Errorf("conversation id = %q", params.ConversationID)
			}
			if params.Message != "aku abis jajan 20rb nih" {
				t.Errorf("message = %q", params.Message)
			}
			return &chat.ChatResult{
				Message: "Oke, sudah dicatat ya.",
				Persona: "Pak Arief",
				Intent:  &label,
				ExtractedData: &intent.Transaction{
					Type:        intent.KindExpense,
					Amount:      20000,
					Description: "aku abis jajan 20rb nih",
				},
			}, nil
		},
	}

	rec := postJSON(t, newChatRouter(service), "/v1/chat",
		`{"conversation_id": "conv_1", "message": "aku abis jajan 20rb nih"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Message       string              `json:"message"`
		Persona       string              `json:"persona"`
		Intent        *string             `json:"intent"`
		ExtractedData *intent.Transaction `json:"extracted_data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Oke, sudah dicatat ya." || body.Persona != "Pak Arief" {
		t.Errorf("body = %+v", body)
	}
	if body.Intent == nil || *body.Intent != intent.RecordTransaction {
		t.Errorf("intent = %v", body.Intent)
	}
	if body.ExtractedData == nil || body.ExtractedData.Amount != 20000 {
		t.Errorf("extracted_data = %+v", body.ExtractedData)
	}
}

func TestChatHandlerConversationIDSpellings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "snake case",
			body: `{"conversation_id": "conv_snake", "message": "halo"}`,
			want: "conv_snake",
		},
		{
			name: "camel case accepted",
			body: `{"conversationId": "conv_camel", "message": "halo"}`,
			want: "conv_camel",
		},
		{
			name: "snake case wins when both present",
			body: `{"conversation_id": "conv_snake", "conversationId": "conv_camel", "message": "halo"}`,
			want: "conv_snake",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			service := &MockChatService{
				ChatFunc: func(_ context.Context, params chat.ChatParams) (*chat.ChatResult, error) {
					got = params.ConversationID
					return &chat.ChatResult{Message: "ok", Persona: "Pak Arief"}, nil
				},
			}

			rec := postJSON(t, newChatRouter(service), "/v1/chat", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if got != tt.want {
				t.Errorf("conversation id = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChatHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing conversation id", body: `{"message": "halo"}`},
		{name: "blank conversation id", body: `{"conversation_id": "  ", "message": "halo"}`},
		{name: "absent message field", body: `{"conversation_id": "conv_1"}`},
		{name: "malformed json", body: `{"conversation_id": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockChatService{
				ChatFunc: func(_ context.Context, _ chat.ChatParams) (*chat.ChatResult, error) {
					t.Fatal("service must not be called on validation failure")
					return nil, nil
				},
			}

			rec := postJSON(t, newChatRouter(service), "/v1/chat", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if _, ok := body["error"].(string); !ok {
				t.Errorf("error body = %v, want an error string", body)
			}
		})
	}
}

func TestChatHandlerEmptyMessageIsValid(t *testing.T) {
	imageTurn := false
	service := &MockChatService{
		ChatFunc: func(_ context.Context, params chat.ChatParams) (*chat.ChatResult, error) {
			imageTurn = params.Message == "" && params.ImageURL != nil
			return &chat.ChatResult{Message: "Struk terbaca.", Persona: "Pak Arief"}, nil
		},
	}

	rec := postJSON(t, newChatRouter(service), "/v1/chat",
		`{"conversation_id": "conv_1", "message": "", "image_url": "https://cdn.example.com/struk.jpg"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an image-only turn", rec.Code)
	}
	if !imageTurn {
		t.Error("empty message with image url was not passed through")
	}
}

func TestChatHandlerUnknownConversation(t *testing.T) {
	service := &MockChatService{
		ChatFunc: func(ctx context.Context, _ chat.ChatParams) (*chat.ChatResult, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "conversation not found", nil, "find-conversation-not-found")
		},
	}

	rec := postJSON(t, newChatRouter(service), "/v1/chat",
		`{"conversation_id": "conv_missing", "message": "halo"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestChatHandlerDatabaseError(t *testing.T) {
	service := &MockChatService{
		ChatFunc: func(ctx context.Context, _ chat.ChatParams) (*chat.ChatResult, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeDatabaseError, "failed to save turn", nil, "save-turn-error")
		},
	}

	rec := postJSON(t, newChatRouter(service), "/v1/chat",
		`{"conversation_id": "conv_1", "message": "halo"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
