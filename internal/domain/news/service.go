package news

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// Service serves course news digests.
type Service interface {
	CourseNews(ctx context.Context, courseID string) (*Digest, error)
}

// ServiceImpl provides the domain implementation.
type ServiceImpl struct {
	courses  CourseRepository
	client   Client
	cache    Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewService wires dependencies. cache may be nil when no Redis is configured.
func NewService(
	courses CourseRepository,
	client Client,
	cache Cache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *ServiceImpl {
	return &ServiceImpl{
		courses:  courses,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "news-service").Logger(),
	}
}

// CourseNews resolves the course, returns the cached digest when fresh, and
// otherwise queries the news provider and refills the cache. Cache failures
// are logged and ignored; they never fail the request.
func (s *ServiceImpl) CourseNews(ctx context.Context, courseID string) (*Digest, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "course_id is required", nil, "course-news-missing-id")
	}

	cacheKey := "news:course:" + courseID
	if s.cache != nil {
		digest, ok, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.log.Warn().Err(err).Str("course_id", courseID).Msg("news cache read failed")
		} else if ok {
			return digest, nil
		}
	}

	course, err := s.courses.FindByPublicID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	articles, err := s.client.Fetch(ctx, course.Query)
	if err != nil {
		return nil, err
	}

	digest := &Digest{CourseTitle: course.Title, Articles: articles}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, digest, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("course_id", courseID).Msg("news cache write failed")
		}
	}
	return digest, nil
}
