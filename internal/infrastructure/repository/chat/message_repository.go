package chat

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/infrastructure/database/entities"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// MessageRepository persists chat messages.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository constructs the message repository.
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// ListRecent returns the newest messages for a conversation reordered
// oldest-first. A non-positive limit returns the whole thread.
func (r *MessageRepository) ListRecent(ctx context.Context, conversationID uint, limit int) ([]domain.Message, error) {
	// The id tiebreaker keeps a turn's user/assistant pair in insert order
	// should their timestamps ever collide.
	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []entities.ChatMessage
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"list-messages-error",
		)
	}

	messages := make([]domain.Message, len(rows))
	for i, row := range rows {
		msg, err := row.EtoD()
		if err != nil {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeDatabaseError,
				"failed to decode message",
				err,
				"decode-message-error",
			)
		}
		// Reverse into chronological order.
		messages[len(rows)-1-i] = *msg
	}
	return messages, nil
}

// SaveTurn writes both sides of a turn and bumps the conversation's
// last_message_at inside one transaction.
func (r *MessageRepository) SaveTurn(ctx context.Context, userMsg, assistantMsg *domain.Message) error {
	userEntity, err := entities.NewSchemaChatMessage(userMsg)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to encode user message", err, "encode-message-error")
	}
	assistantEntity, err := entities.NewSchemaChatMessage(assistantMsg)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to encode assistant message", err, "encode-message-error")
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userEntity).Error; err != nil {
			return err
		}
		if err := tx.Create(assistantEntity).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Conversation{}).
			Where("id = ?", userMsg.ConversationID).
			Update("last_message_at", time.Now()).Error
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to save turn",
			err,
			"save-turn-error",
		)
	}

	userMsg.ID = userEntity.ID
	assistantMsg.ID = assistantEntity.ID
	return nil
}

// Ensure interface compliance.
var _ domain.MessageRepository = (*MessageRepository)(nil)
