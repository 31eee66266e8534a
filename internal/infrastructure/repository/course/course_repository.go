package course

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/infrastructure/database/entities"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// Repository looks up course news configuration.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs the course repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByPublicID retrieves a course by its public identifier.
func (r *Repository) FindByPublicID(ctx context.Context, publicID string) (*news.Course, error) {
	var entity entities.Course
	err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"course not found",
				err,
				"find-course-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find course",
			err,
			"find-course-error",
		)
	}

	course, err := entity.EtoD()
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to decode course config",
			err,
			"decode-course-error",
		)
	}
	return course, nil
}

// Ensure interface compliance.
var _ news.CourseRepository = (*Repository)(nil)
