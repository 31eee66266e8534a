package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

type mockCourseRepo struct {
	FindByPublicIDFunc func(ctx context.Context, publicID string) (*Course, error)
}

func (m *mockCourseRepo) FindByPublicID(ctx context.Context, publicID string) (*Course, error) {
	return m.FindByPublicIDFunc(ctx, publicID)
}

type mockClient struct {
	FetchFunc func(ctx context.Context, query QueryConfig) ([]Article, error)
}

func (m *mockClient) Fetch(ctx context.Context, query QueryConfig) ([]Article, error) {
	return m.FetchFunc(ctx, query)
}

type memoryCache struct {
	entries map[string]*Digest
	getErr  error
}

func (c *memoryCache) Get(_ context.Context, key string) (*Digest, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	digest, ok := c.entries[key]
	return digest, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, digest *Digest, _ time.Duration) error {
	if c.entries == nil {
		c.entries = map[string]*Digest{}
	}
	c.entries[key] = digest
	return nil
}

func sampleCourse() *Course {
	return &Course{
		ID:       7,
		PublicID: "course_idx",
		Title:    "Saham untuk Pemula",
		Query:    QueryConfig{Query: "IHSG", Language: "id", PageSize: 10},
	}
}

func TestCourseNewsFetchesAndCaches(t *testing.T) {
	fetches := 0
	courses := &mockCourseRepo{
		FindByPublicIDFunc: func(_ context.Context, publicID string) (*Course, error) {
			if publicID != "course_idx" {
				t.Fatalf("unexpected course lookup: %s", publicID)
			}
			return sampleCourse(), nil
		},
	}
	client := &mockClient{
		FetchFunc: func(_ context.Context, query QueryConfig) ([]Article, error) {
			fetches++
			if query.Query != "IHSG" {
				t.Errorf("query = %q, want the course config query", query.Query)
			}
			return []Article{{Title: "IHSG menguat", URL: "https://example.com/a"}}, nil
		},
	}
	cache := &memoryCache{}

	svc := NewService(courses, client, cache, 15*time.Minute, zerolog.Nop())

	digest, err := svc.CourseNews(context.Background(), "course_idx")
	if err != nil {
		t.Fatalf("CourseNews() error = %v", err)
	}
	if digest.CourseTitle != "Saham untuk Pemula" || len(digest.Articles) != 1 {
		t.Errorf("digest = %+v", digest)
	}

	// Second call must be served from cache.
	if _, err := svc.CourseNews(context.Background(), "course_idx"); err != nil {
		t.Fatalf("CourseNews() second call error = %v", err)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (cache hit on second call)", fetches)
	}
}

func TestCourseNewsCacheFailureIsNotFatal(t *testing.T) {
	courses := &mockCourseRepo{
		FindByPublicIDFunc: func(_ context.Context, _ string) (*Course, error) {
			return sampleCourse(), nil
		},
	}
	client := &mockClient{
		FetchFunc: func(_ context.Context, _ QueryConfig) ([]Article, error) {
			return []Article{{Title: "berita", URL: "https://example.com/b"}}, nil
		},
	}
	cache := &memoryCache{getErr: errors.New("redis down")}

	svc := NewService(courses, client, cache, time.Minute, zerolog.Nop())
	digest, err := svc.CourseNews(context.Background(), "course_idx")
	if err != nil {
		t.Fatalf("CourseNews() error = %v, cache failures must degrade to a fetch", err)
	}
	if len(digest.Articles) != 1 {
		t.Errorf("articles = %d, want 1", len(digest.Articles))
	}
}

func TestCourseNewsWithoutCache(t *testing.T) {
	courses := &mockCourseRepo{
		FindByPublicIDFunc: func(_ context.Context, _ string) (*Course, error) {
			return sampleCourse(), nil
		},
	}
	client := &mockClient{
		FetchFunc: func(_ context.Context, _ QueryConfig) ([]Article, error) {
			return nil, nil
		},
	}

	svc := NewService(courses, client, nil, time.Minute, zerolog.Nop())
	if _, err := svc.CourseNews(context.Background(), "course_idx"); err != nil {
		t.Fatalf("CourseNews() error = %v, nil cache must be tolerated", err)
	}
}

func TestCourseNewsValidation(t *testing.T) {
	svc := NewService(&mockCourseRepo{}, &mockClient{}, nil, time.Minute, zerolog.Nop())
	_, err := svc.CourseNews(context.Background(), "  ")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("err = %v, want a validation error", err)
	}
}

func TestCourseNewsUnknownCourse(t *testing.T) {
	notFound := platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "course not found", nil, "find-course-not-found")
	courses := &mockCourseRepo{
		FindByPublicIDFunc: func(_ context.Context, _ string) (*Course, error) {
			return nil, notFound
		},
	}
	client := &mockClient{
		FetchFunc: func(_ context.Context, _ QueryConfig) ([]Article, error) {
			t.Fatal("provider must not be called for a missing course")
			return nil, nil
		},
	}

	svc := NewService(courses, client, nil, time.Minute, zerolog.Nop())
	_, err := svc.CourseNews(context.Background(), "course_missing")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("err = %v, want a not-found error", err)
	}
}
