package services

import (
	"context"

	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"

	"github.com/google/uuid"
)

// AddressService backs address management on the customer detail screen.
type AddressService struct {
	addresses repository.AddressRepo
	notifier  notify.Notifier
}

func NewAddressService(addresses repository.AddressRepo, notifier notify.Notifier) *AddressService {
	return &AddressService{addresses: addresses, notifier: notifier}
}

func (s *AddressService) ListForUser(ctx context.Context, userID string) ([]models.Address, error) {
	return s.addresses.FindByUserID(ctx, userID)
}

func (s *AddressService) CreateAddress(ctx context.Context, req AddressCreateRequest) (*models.Address, error) {
	address := &models.Address{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Label:      req.Label,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	err := s.addresses.Put(ctx, address)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "address",
		Action:  "create",
		ID:      address.ID.String(),
		Success: err == nil,
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) UpdateAddress(ctx context.Context, id string, req AddressUpdateRequest) error {
	addressID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.addresses.FindByID(ctx, addressID); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	err = s.addresses.Update(ctx, addressID, updates)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "address",
		Action:  "update",
		ID:      id,
		Success: err == nil,
	})
	return err
}

func (s *AddressService) DeleteAddress(ctx context.Context, id string) error {
	addressID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.addresses.FindByID(ctx, addressID); err != nil {
		return err
	}

	err = s.addresses.Delete(ctx, addressID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "address",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}
