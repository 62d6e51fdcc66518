package services

import (
	"context"
	"strings"

	"finance-tracker/internal/logger"
	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

type TagServiceImpl struct {
	store storage.Store
}

func NewTagService(store storage.Store) TagService {
	return &TagServiceImpl{store: store}
}

func (s *TagServiceImpl) CreateTag(ctx context.Context, userID int64, payload *models.TagPayload) (*models.Tag, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, validationError("Tag name cannot be empty")
	}

	var tag *models.Tag
	err := s.store.WithTx(ctx, func(repo storage.Repository) error {
		var err error
		tag, err = repo.CreateTag(ctx, userID, name)
		return err
	})
	if err != nil {
		return nil, storageError(err, "create tag")
	}

	logger.LogEvent(logger.EventTagCreated, serviceName, "sqlite", userID, map[string]interface{}{
		"tag_id": tag.ID,
		"name":   tag.Name,
	})
	return tag, nil
}

func (s *TagServiceImpl) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.store.WithConn(ctx, func(repo storage.Repository) error {
		var err error
		tags, err = repo.ListTags(ctx, userID)
		return err
	})
	if err != nil {
		return nil, storageError(err, "fetch tags")
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}
