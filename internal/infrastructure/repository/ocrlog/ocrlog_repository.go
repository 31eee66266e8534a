package ocrlog

import (
	"context"

	"gorm.io/gorm"

	"moneystocks/services/chat-api/internal/domain/ocr"
	"moneystocks/services/chat-api/internal/infrastructure/database/entities"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// Repository persists receipt processing logs.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs the OCR log repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a processing log row.
func (r *Repository) Create(ctx context.Context, log *ocr.Log) error {
	entity, err := entities.NewSchemaOCRProcessingLog(log)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to encode ocr log", err, "encode-ocr-log-error")
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create ocr log",
			err,
			"create-ocr-log-error",
		)
	}
	log.ID = entity.ID
	return nil
}

// Ensure interface compliance.
var _ ocr.LogRepository = (*Repository)(nil)
