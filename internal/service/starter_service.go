package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"github.com/DiogoFabricioAG/connect2/internal/repository"
	"github.com/DiogoFabricioAG/connect2/pkg/lock"
	"github.com/DiogoFabricioAG/connect2/pkg/rabbitmq"
)

var (
	ErrMissingEventRef = errors.New("event reference is required")
	ErrEventNotFound   = errors.New("event not found")
	ErrStartInProgress = errors.New("event start already in progress")
)

const (
	DefaultMinRoomSize = 2
	DefaultMaxRoomSize = 6
)

var defaultRoomTopics = []string{"Networking", "Random"}

// StartParams identifies the event by ID or by join code and optionally
// overrides the room size bounds. Bounds are normalized, never rejected.
type StartParams struct {
	EventID     uint
	EventCode   string
	MinRoomSize int
	MaxRoomSize int
}

type RoomSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
}

type StartSummary struct {
	EventID        uint          `json:"event_id"`
	AssignedBadges int           `json:"assigned_badges"`
	RoomsCreated   int           `json:"rooms_created"`
	PairsCreated   int           `json:"pairs_created"`
	Rooms          []RoomSummary `json:"rooms"`
}

// StarterService turns a draft event live: badges for everyone, random
// discussion rooms within size bounds, and a symmetric icebreaker pairing.
type StarterService interface {
	StartEvent(ctx context.Context, params StartParams) (*StartSummary, error)
	AssignBadges(ctx context.Context, eventID uint) (int, error)
}

type starterService struct {
	eventRepo       repository.EventRepository
	guestRepo       repository.GuestRepository
	roomRepo        repository.RoomRepository
	participantRepo repository.RoomParticipantRepository
	locks           lock.Locker
	publisher       *rabbitmq.Publisher
	rng             *Rand
}

func NewStarterService(
	eventRepo repository.EventRepository,
	guestRepo repository.GuestRepository,
	roomRepo repository.RoomRepository,
	participantRepo repository.RoomParticipantRepository,
	locks lock.Locker,
	publisher *rabbitmq.Publisher,
	rng *Rand,
) StarterService {
	return &starterService{
		eventRepo:       eventRepo,
		guestRepo:       guestRepo,
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		locks:           locks,
		publisher:       publisher,
		rng:             rng,
	}
}

// StartEvent runs badge assignment, room partitioning and pairing in strict
// sequence, then flips the event to live. Steps commit independently: a
// failure surfaces immediately and already-committed writes stay, which is
// safe because the whole sequence is re-runnable (badges only extend, rooms
// and pairs are regenerated from scratch under the per-event lease).
func (s *starterService) StartEvent(ctx context.Context, params StartParams) (*StartSummary, error) {
	eventID, err := resolveEventID(ctx, s.eventRepo, params.EventID, params.EventCode)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(ctx, startLeaseKey(eventID))
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyHeld) {
			return nil, ErrStartInProgress
		}
		return nil, fmt.Errorf("acquire start lease: %w", err)
	}
	defer release()

	minSize, maxSize := clampRoomSizes(params.MinRoomSize, params.MaxRoomSize)

	assigned, err := s.AssignBadges(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Reset-and-regenerate: drop the previous generation of rooms and
	// pairings so a re-run replaces state instead of accumulating it.
	if err := s.resetGenerated(ctx, eventID); err != nil {
		return nil, err
	}

	rooms, err := s.partitionRooms(ctx, eventID, minSize, maxSize)
	if err != nil {
		return nil, err
	}

	pairs, err := s.createPairs(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.UpdateStatus(ctx, eventID, models.StatusLive); err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	summary := &StartSummary{
		EventID:        eventID,
		AssignedBadges: assigned,
		RoomsCreated:   len(rooms),
		PairsCreated:   pairs,
		Rooms:          rooms,
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.started", summary)
	}

	return summary, nil
}

// AssignBadges gives every badge-less guest the next sequential number, in
// registration order. Guests that already hold a badge are never touched, so
// re-running after new registrations only extends the sequence.
func (s *starterService) AssignBadges(ctx context.Context, eventID uint) (int, error) {
	guests, err := s.guestRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("load guests: %w", err)
	}

	next := 0
	for _, g := range guests {
		if g.BadgeNumber != nil && *g.BadgeNumber > next {
			next = *g.BadgeNumber
		}
	}

	assigned := 0
	for _, g := range guests {
		if g.BadgeNumber != nil {
			continue
		}
		next++
		if err := s.guestRepo.UpdateBadgeNumber(ctx, g.ID, next); err != nil {
			return assigned, fmt.Errorf("assign badge %d to guest %d: %w", next, g.ID, err)
		}
		assigned++
	}

	return assigned, nil
}

func (s *starterService) resetGenerated(ctx context.Context, eventID uint) error {
	if err := s.participantRepo.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete room memberships: %w", err)
	}
	if err := s.roomRepo.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete rooms: %w", err)
	}
	if err := s.guestRepo.ClearPartners(ctx, eventID); err != nil {
		return fmt.Errorf("clear partners: %w", err)
	}
	return nil
}

// partitionRooms shuffles the badge-holding guests and cuts the list into
// randomly sized chunks within [minSize, maxSize]. A remainder smaller than
// minSize is folded into the last room so nobody ends up alone; since the
// remainder is at most minSize-1, no room ever exceeds maxSize+minSize-1.
func (s *starterService) partitionRooms(ctx context.Context, eventID uint, minSize, maxSize int) ([]RoomSummary, error) {
	guests, err := s.guestRepo.FindBadged(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load badged guests: %w", err)
	}
	if len(guests) == 0 {
		return nil, nil
	}

	s.rng.Shuffle(len(guests), func(i, j int) {
		guests[i], guests[j] = guests[j], guests[i]
	})

	type chunk struct {
		name     string
		guestIDs []uint
	}
	var chunks []chunk
	index := 0
	for index < len(guests) {
		remaining := len(guests) - index
		if remaining < minSize && len(chunks) > 0 {
			last := &chunks[len(chunks)-1]
			for _, g := range guests[index:] {
				last.guestIDs = append(last.guestIDs, g.ID)
			}
			break
		}
		size := minSize + s.rng.Intn(maxSize-minSize+1)
		if size > remaining {
			size = remaining
		}
		ids := make([]uint, 0, size)
		for _, g := range guests[index : index+size] {
			ids = append(ids, g.ID)
		}
		chunks = append(chunks, chunk{
			name:     fmt.Sprintf("Room %d", len(chunks)+1),
			guestIDs: ids,
		})
		index += size
	}

	rooms := make([]models.Room, len(chunks))
	for i, c := range chunks {
		rooms[i] = models.Room{
			EventID: eventID,
			Name:    c.name,
			Topics:  joinTopics(defaultRoomTopics),
		}
	}
	rooms, err = s.roomRepo.CreateBatch(ctx, rooms)
	if err != nil {
		return nil, fmt.Errorf("create rooms: %w", err)
	}

	var participants []models.RoomParticipant
	for i, c := range chunks {
		for _, gid := range c.guestIDs {
			participants = append(participants, models.RoomParticipant{
				RoomID:  rooms[i].ID,
				GuestID: gid,
				EventID: eventID,
			})
		}
	}
	if err := s.participantRepo.UpsertAll(ctx, participants); err != nil {
		return nil, fmt.Errorf("write room memberships: %w", err)
	}

	summaries := make([]RoomSummary, len(rooms))
	for i, room := range rooms {
		summaries[i] = RoomSummary{ID: room.ID, Name: room.Name, Members: len(chunks[i].guestIDs)}
	}
	return summaries, nil
}

// createPairs reshuffles the badge-holding guests independently of the room
// partition and pairs them off two at a time, writing the partner reference
// on both sides. An odd guest at the end stays unpaired.
func (s *starterService) createPairs(ctx context.Context, eventID uint) (int, error) {
	guests, err := s.guestRepo.FindBadged(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("load badged guests: %w", err)
	}

	s.rng.Shuffle(len(guests), func(i, j int) {
		guests[i], guests[j] = guests[j], guests[i]
	})

	pairs := 0
	for i := 0; i+1 < len(guests); i += 2 {
		a, b := guests[i].ID, guests[i+1].ID
		if err := s.guestRepo.UpdatePartner(ctx, a, &b); err != nil {
			return pairs, fmt.Errorf("set partner for guest %d: %w", a, err)
		}
		if err := s.guestRepo.UpdatePartner(ctx, b, &a); err != nil {
			return pairs, fmt.Errorf("set partner for guest %d: %w", b, err)
		}
		pairs++
	}

	return pairs, nil
}

// clampRoomSizes normalizes the requested bounds: unset values fall back to
// the defaults, the minimum is floored to 2 and the maximum to the minimum.
func clampRoomSizes(minSize, maxSize int) (int, int) {
	if minSize <= 0 {
		minSize = DefaultMinRoomSize
	}
	if minSize < 2 {
		minSize = 2
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxRoomSize
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return minSize, maxSize
}

func startLeaseKey(eventID uint) string {
	return fmt.Sprintf("event:start:%d", eventID)
}

func joinTopics(topics []string) string {
	return strings.Join(topics, ",")
}
