package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/infrastructure/database/entities"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// ConversationRepository persists conversation metadata.
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository constructs the conversation repository.
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create inserts a new conversation.
func (r *ConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conversation)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"create-conversation-error",
		)
	}
	conversation.ID = entity.ID
	return nil
}

// FindByPublicID retrieves a conversation by its public identifier.
func (r *ConversationRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Conversation, error) {
	var entity entities.Conversation
	err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"conversation not found",
				err,
				"find-conversation-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find conversation",
			err,
			"find-conversation-error",
		)
	}
	return entity.EtoD(), nil
}

// Ensure interface compliance.
var _ domain.ConversationRepository = (*ConversationRepository)(nil)
