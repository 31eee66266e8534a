package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/intent"
	"moneystocks/services/chat-api/internal/domain/llm"
	"moneystocks/services/chat-api/internal/domain/persona"
	"moneystocks/services/chat-api/internal/infrastructure/observability"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

const (
	// historyLimit bounds the prompt context window.
	historyLimit = 10

	replyTemperature = 0.7
	replyMaxTokens   = 500
)

// taskFraming is appended to every persona system prompt. It pins the
// behaviors the mobile client depends on regardless of persona voice.
const taskFraming = `Jawab dengan singkat dan jelas, maksimal beberapa kalimat.
Sapa user dengan ramah saat mereka menyapa.
Jika user menyebutkan transaksi (beli, bayar, terima, dll), bantu identifikasi jumlah dan jenis transaksi (income/expense) dan konfirmasi bahwa transaksinya sudah dicatat.
Jika user mengirim gambar, jelaskan isinya secara singkat dan kaitkan dengan keuangan mereka.`

// ChatParams is the normalized input of one conversational turn.
type ChatParams struct {
	ConversationID string
	Message        string
	ImageURL       *string
}

// ChatResult is what the handler returns to the client. Persona is the
// display name shown to the user; PersonaKey is the stable identifier used
// for logs and metrics.
type ChatResult struct {
	Message       string
	Persona       string
	PersonaKey    string
	Intent        *string
	ExtractedData *intent.Transaction
	UsedFallback  bool
}

// CreateConversationParams bootstraps a new thread.
type CreateConversationParams struct {
	UserID  string
	Persona string
	Title   *string
}

// Service drives the conversational request pipeline.
type Service interface {
	Chat(ctx context.Context, params ChatParams) (*ChatResult, error)
	CreateConversation(ctx context.Context, params CreateConversationParams) (*Conversation, error)
	ListMessages(ctx context.Context, conversationPublicID string) ([]Message, error)
}

// ServiceImpl provides the domain implementation.
type ServiceImpl struct {
	conversations ConversationRepository
	messages      MessageRepository
	provider      llm.Provider
	log           zerolog.Logger
}

// NewService wires dependencies.
func NewService(
	conversations ConversationRepository,
	messages MessageRepository,
	provider llm.Provider,
	log zerolog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		conversations: conversations,
		messages:      messages,
		provider:      provider,
		log:           log.With().Str("component", "chat-service").Logger(),
	}
}

// Chat runs one turn: load context, resolve persona, extract intent, invoke
// the model (falling back on failure), persist both sides of the turn.
func (s *ServiceImpl) Chat(ctx context.Context, params ChatParams) (*ChatResult, error) {
	conv, err := s.conversations.FindByPublicID(ctx, params.ConversationID)
	if err != nil {
		return nil, err
	}

	ctx, span := observability.StartChatTurnSpan(ctx, conv.PublicID, conv.Persona)
	defer span.End()

	history, err := s.messages.ListRecent(ctx, conv.ID, historyLimit)
	if err != nil {
		return nil, err
	}

	cfg := persona.Resolve(conv.Persona)
	extracted := intent.Extract(params.Message)

	reply, usedFallback := s.invokeModel(ctx, cfg, history, params, extracted != nil)

	var intentLabel *string
	if extracted != nil {
		label := intent.RecordTransaction
		intentLabel = &label
	}

	// The assistant timestamp must sort strictly after the user's even
	// though both rows are written in one transaction; tied created_at
	// values would leave the pair's replay order to the database.
	now := time.Now()
	personaKey := cfg.Key
	userMsg := &Message{
		PublicID:       newPublicID("msg"),
		ConversationID: conv.ID,
		Role:           RoleUser,
		Content:        params.Message,
		Intent:         intentLabel,
		ExtractedData:  extracted,
		ImageURL:       params.ImageURL,
		CreatedAt:      now,
	}
	assistantMsg := &Message{
		PublicID:       newPublicID("msg"),
		ConversationID: conv.ID,
		Role:           RoleAssistant,
		Content:        reply,
		Persona:        &personaKey,
		CreatedAt:      now.Add(time.Millisecond),
	}

	if err := s.messages.SaveTurn(ctx, userMsg, assistantMsg); err != nil {
		return nil, err
	}

	return &ChatResult{
		Message:       reply,
		Persona:       cfg.Name,
		PersonaKey:    cfg.Key,
		Intent:        intentLabel,
		ExtractedData: extracted,
		UsedFallback:  usedFallback,
	}, nil
}

// CreateConversation opens a new thread for the user with a normalized
// persona key.
func (s *ServiceImpl) CreateConversation(ctx context.Context, params CreateConversationParams) (*Conversation, error) {
	if strings.TrimSpace(params.UserID) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "user_id is required", nil, "create-conversation-missing-user")
	}

	now := time.Now()
	conv := &Conversation{
		PublicID:  newPublicID("conv"),
		UserID:    params.UserID,
		Title:     params.Title,
		Persona:   persona.Resolve(params.Persona).Key,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// ListMessages returns the full thread, oldest first.
func (s *ServiceImpl) ListMessages(ctx context.Context, conversationPublicID string) ([]Message, error) {
	conv, err := s.conversations.FindByPublicID(ctx, conversationPublicID)
	if err != nil {
		return nil, err
	}
	return s.messages.ListRecent(ctx, conv.ID, 0)
}

// invokeModel issues the single model call and absorbs every failure into the
// persona fallback. It always returns a non-empty reply.
func (s *ServiceImpl) invokeModel(ctx context.Context, cfg persona.Config, history []Message, params ChatParams, transactionRecorded bool) (reply string, usedFallback bool) {
	withImage := params.ImageURL != nil && strings.TrimSpace(*params.ImageURL) != ""

	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.ChatMessage{
		Role:    "system",
		Content: cfg.SystemPrompt + "\n\n" + taskFraming,
	})
	for _, m := range history {
		messages = append(messages, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	if withImage {
		parts := make([]llm.ContentPart, 0, 2)
		if params.Message != "" {
			parts = append(parts, llm.TextContent(params.Message))
		}
		parts = append(parts, llm.ImageContent(*params.ImageURL))
		messages = append(messages, llm.ChatMessage{Role: "user", Content: parts})
	} else {
		messages = append(messages, llm.ChatMessage{Role: "user", Content: params.Message})
	}

	temperature := replyTemperature
	maxTokens := replyMaxTokens
	resp, err := s.provider.CreateChatCompletion(ctx, llm.ChatCompletionRequest{
		Model:       cfg.Model(withImage),
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("persona", cfg.Key).Msg("model call failed, using fallback")
		return cfg.Fallback(transactionRecorded), true
	}

	content, ok := resp.FirstChoiceContent()
	if !ok {
		s.log.Warn().Str("persona", cfg.Key).Msg("model returned no choices, using fallback")
		return cfg.Fallback(transactionRecorded), true
	}

	sanitized := sanitizeReply(content)
	if !replyUsable(sanitized) {
		s.log.Warn().Str("persona", cfg.Key).Int("raw_length", len(content)).
			Msg("model output unusable after sanitization, using fallback")
		return cfg.Fallback(transactionRecorded), true
	}

	return sanitized, false
}

func newPublicID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
