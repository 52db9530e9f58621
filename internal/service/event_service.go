package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"github.com/DiogoFabricioAG/connect2/internal/repository"
	"github.com/DiogoFabricioAG/connect2/pkg/rabbitmq"
	"gorm.io/gorm"
)

// codeCharset omits easily confused characters (0/O, 1/I/L).
const (
	codeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength  = 6

	// codeAttempts bounds the regenerate-on-collision loop when a generated
	// join code hits the unique index on events.code.
	codeAttempts = 5
)

type EventService interface {
	// CreateEvent stores the event with a generated join code, plus an
	// optional initial guest list.
	CreateEvent(ctx context.Context, event *models.Event, guests []models.Guest) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	// CreateRooms inserts count empty named rooms for manual setups.
	CreateRooms(ctx context.Context, eventID uint, count int, prefix string) ([]models.Room, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	guestRepo repository.GuestRepository
	roomRepo  repository.RoomRepository
	publisher *rabbitmq.Publisher
	rng       *Rand
}

func NewEventService(
	eventRepo repository.EventRepository,
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	publisher *rabbitmq.Publisher,
	rng *Rand,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		publisher: publisher,
		rng:       rng,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event, guests []models.Guest) error {
	event.Status = models.StatusDraft

	var err error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		event.Code = s.generateCode()
		err = s.eventRepo.Create(ctx, event)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create event: %w", err)
		}
	}
	if err != nil {
		return fmt.Errorf("create event: join code collisions exhausted retries: %w", err)
	}

	if len(guests) > 0 {
		for i := range guests {
			guests[i].EventID = event.ID
		}
		if err := s.guestRepo.CreateAll(ctx, guests); err != nil {
			return fmt.Errorf("create initial guests: %w", err)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}

	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) CreateRooms(ctx context.Context, eventID uint, count int, prefix string) ([]models.Room, error) {
	if _, err := resolveEventID(ctx, s.eventRepo, eventID, ""); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 5
	}
	if prefix == "" {
		prefix = "Room"
	}

	rooms := make([]models.Room, count)
	for i := range rooms {
		rooms[i] = models.Room{
			EventID: eventID,
			Name:    fmt.Sprintf("%s %d", prefix, i+1),
		}
	}

	rooms, err := s.roomRepo.CreateBatch(ctx, rooms)
	if err != nil {
		return nil, fmt.Errorf("create rooms: %w", err)
	}
	return rooms, nil
}

func (s *eventService) generateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeCharset[s.rng.Intn(len(codeCharset))]
	}
	return string(code)
}

// resolveEventID turns an event reference (ID or join code) into an ID,
// preferring the ID when both are present.
func resolveEventID(ctx context.Context, repo repository.EventRepository, id uint, code string) (uint, error) {
	if id != 0 {
		event, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrEventNotFound
			}
			return 0, fmt.Errorf("find event %d: %w", id, err)
		}
		return event.ID, nil
	}
	if code != "" {
		event, err := repo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrEventNotFound
			}
			return 0, fmt.Errorf("find event by code %q: %w", code, err)
		}
		return event.ID, nil
	}
	return 0, ErrMissingEventRef
}
