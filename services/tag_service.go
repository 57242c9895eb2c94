package services

import (
	"context"

	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"

	"github.com/google/uuid"
)

// TagService backs tag management. Products reference tags by id;
// deleting a tag leaves those references dangling and the product rows
// simply stop showing the name.
type TagService struct {
	tags     repository.TagRepo
	notifier notify.Notifier
}

func NewTagService(tags repository.TagRepo, notifier notify.Notifier) *TagService {
	return &TagService{tags: tags, notifier: notifier}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tags.FindAll(ctx)
}

func (s *TagService) CreateTag(ctx context.Context, req TagCreateRequest) (*models.Tag, error) {
	tag := &models.Tag{ID: uuid.New(), Name: req.Name}

	err := s.tags.Put(ctx, tag)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "tag",
		Action:  "create",
		ID:      tag.ID.String(),
		Success: err == nil,
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	tagID, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.tags.Delete(ctx, tagID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "tag",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}
