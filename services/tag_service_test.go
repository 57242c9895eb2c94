package services_test

import (
	"context"
	"testing"

	"admin-service/services"

	"github.com/stretchr/testify/assert"
)

func TestCreateTagStoresAndNotifies(t *testing.T) {
	tagRepo := newMockTagRepo()
	notifier := &recordingNotifier{}
	svc := services.NewTagService(tagRepo, notifier)

	tag, err := svc.CreateTag(context.Background(), services.TagCreateRequest{Name: "clearance"})
	assert.NoError(t, err)
	assert.Equal(t, "clearance", tag.Name)
	assert.Contains(t, tagRepo.tags, tag.ID)

	assert.Len(t, notifier.events, 1)
	assert.Equal(t, "tag", notifier.events[0].Entity)
	assert.Equal(t, "create", notifier.events[0].Action)
	assert.True(t, notifier.events[0].Success)
}

func TestListTags(t *testing.T) {
	tagRepo := newMockTagRepo()
	svc := services.NewTagService(tagRepo, &recordingNotifier{})

	created, err := svc.CreateTag(context.Background(), services.TagCreateRequest{Name: "summer"})
	assert.NoError(t, err)

	tags, err := svc.ListTags(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, created.ID, tags[0].ID)
}

func TestDeleteTagRemovesFromStore(t *testing.T) {
	tagRepo := newMockTagRepo()
	notifier := &recordingNotifier{}
	svc := services.NewTagService(tagRepo, notifier)

	tag, err := svc.CreateTag(context.Background(), services.TagCreateRequest{Name: "sale"})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteTag(context.Background(), tag.ID.String()))
	assert.Empty(t, tagRepo.tags)
	assert.Equal(t, "delete", notifier.events[1].Action)
}

func TestDeleteTagRejectsMalformedID(t *testing.T) {
	svc := services.NewTagService(newMockTagRepo(), &recordingNotifier{})

	err := svc.DeleteTag(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}
