package services

import (
	"context"
	"testing"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_CreateAndList(t *testing.T) {
	store := setupTestStore(t)
	alice := signUp(t, store, "a@x.com")
	bob := signUp(t, store, "b@x.com")
	svc := NewTagService(store)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, alice, &models.TagPayload{Name: " weekly "})
	require.NoError(t, err)
	assert.Equal(t, "weekly", tag.Name)
	assert.Equal(t, alice, tag.UserID)

	_, err = svc.CreateTag(ctx, alice, &models.TagPayload{Name: "weekly"})
	se := requireKind(t, err, KindConflict)
	assert.Equal(t, "Tag already exists", se.Message)

	// Имена тегов уникальны только в пределах пользователя
	_, err = svc.CreateTag(ctx, bob, &models.TagPayload{Name: "weekly"})
	require.NoError(t, err)

	_, err = svc.CreateTag(ctx, alice, &models.TagPayload{Name: ""})
	requireKind(t, err, KindValidation)

	tags, err := svc.ListTags(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, tag.ID, tags[0].ID)
}
