package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"github.com/DiogoFabricioAG/connect2/internal/repository"
	"gorm.io/gorm"
)

var ErrGuestNotFound = errors.New("guest not found")

// SearchParams looks a guest up by badge number within an event referenced
// by ID or join code. MarkFound flags the guest as checked in.
type SearchParams struct {
	EventID     uint
	EventCode   string
	BadgeNumber int
	MarkFound   bool
}

type GuestService interface {
	RegisterGuest(ctx context.Context, guest *models.Guest) error
	ListGuests(ctx context.Context, eventID uint) ([]models.Guest, error)
	UpdateProfile(ctx context.Context, guestID uint, fields map[string]any) (*models.Guest, error)
	// SearchByBadge returns (nil, nil) when no guest holds the badge.
	SearchByBadge(ctx context.Context, params SearchParams) (*models.Guest, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
	eventRepo repository.EventRepository
}

func NewGuestService(guestRepo repository.GuestRepository, eventRepo repository.EventRepository) GuestService {
	return &guestService{guestRepo: guestRepo, eventRepo: eventRepo}
}

func (s *guestService) RegisterGuest(ctx context.Context, guest *models.Guest) error {
	if _, err := resolveEventID(ctx, s.eventRepo, guest.EventID, ""); err != nil {
		return err
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return fmt.Errorf("create guest: %w", err)
	}
	return nil
}

func (s *guestService) ListGuests(ctx context.Context, eventID uint) ([]models.Guest, error) {
	return s.guestRepo.FindByEvent(ctx, eventID)
}

func (s *guestService) UpdateProfile(ctx context.Context, guestID uint, fields map[string]any) (*models.Guest, error) {
	if _, err := s.guestRepo.FindByID(ctx, guestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest %d: %w", guestID, err)
	}
	if err := s.guestRepo.UpdateProfile(ctx, guestID, fields); err != nil {
		return nil, fmt.Errorf("update guest %d: %w", guestID, err)
	}
	return s.guestRepo.FindByID(ctx, guestID)
}

func (s *guestService) SearchByBadge(ctx context.Context, params SearchParams) (*models.Guest, error) {
	eventID, err := resolveEventID(ctx, s.eventRepo, params.EventID, params.EventCode)
	if err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.FindByBadge(ctx, eventID, params.BadgeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find guest by badge %d: %w", params.BadgeNumber, err)
	}

	if params.MarkFound && !guest.Found {
		if err := s.guestRepo.MarkFound(ctx, guest.ID); err != nil {
			return nil, fmt.Errorf("mark guest %d found: %w", guest.ID, err)
		}
		guest.Found = true
	}

	return guest, nil
}
