package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
	"github.com/google/uuid"
)

type CustomBuildService struct {
	customBuildRepo repository.CustomBuildRepository
}

func NewCustomBuildService(customBuildRepo repository.CustomBuildRepository) *CustomBuildService {
	return &CustomBuildService{customBuildRepo: customBuildRepo}
}

// CreateCustomBuild stores an arbitrary field set with a fresh id, a capture
// timestamp, and a defaulted user_id. No other validation runs; the schema
// is deliberately open.
func (s *CustomBuildService) CreateCustomBuild(ctx context.Context, fields map[string]any) (*domain.CustomBuild, error) {
	userID := domain.AnonymousUser
	if v, ok := fields["user_id"].(string); ok && v != "" {
		userID = v
	}

	// Injected attributes live on their own columns, not in the blob.
	delete(fields, "id")
	delete(fields, "user_id")
	delete(fields, "created_at")

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode build fields: %w", err)
	}

	build := &domain.CustomBuild{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
		Fields:    raw,
	}
	if err := s.customBuildRepo.Create(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to save custom build: %w", err)
	}
	return build, nil
}

func (s *CustomBuildService) GetAllCustomBuilds(ctx context.Context) ([]*domain.CustomBuild, error) {
	return s.customBuildRepo.GetAll(ctx)
}
