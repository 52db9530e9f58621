package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DiogoFabricioAG/connect2/internal/models"
	"github.com/DiogoFabricioAG/connect2/pkg/lock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- In-memory store shared by the fake repositories ---

type fakeStore struct {
	mu           sync.Mutex
	events       map[uint]*models.Event
	guests       []*models.Guest
	rooms        []*models.Room
	participants []models.RoomParticipant

	nextEventID uint
	nextGuestID uint
	nextRoomID  uint

	// when >= 0, UpdateBadgeNumber fails once this many updates succeeded
	failBadgeUpdateAfter int
	badgeUpdates         int

	// when > 0, event Create reports a duplicate key this many times
	failEventCreates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:               make(map[uint]*models.Event),
		failBadgeUpdateAfter: -1,
	}
}

func (s *fakeStore) addEvent(code string) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEventID++
	e := &models.Event{ID: s.nextEventID, Title: fmt.Sprintf("Event %d", s.nextEventID), Code: code, Status: models.StatusDraft}
	s.events[e.ID] = e
	return e
}

func (s *fakeStore) addGuests(eventID uint, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		s.nextGuestID++
		s.guests = append(s.guests, &models.Guest{
			ID:        s.nextGuestID,
			EventID:   eventID,
			FullName:  fmt.Sprintf("Guest %d", s.nextGuestID),
			CreatedAt: base.Add(time.Duration(s.nextGuestID) * time.Second),
		})
	}
}

func (s *fakeStore) guest(id uint) *models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// roomSizes returns the member count per existing room of the event.
func (s *fakeStore) roomSizes(eventID uint) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[uint]int)
	for _, r := range s.rooms {
		if r.EventID == eventID {
			counts[r.ID] = 0
		}
	}
	for _, p := range s.participants {
		if _, ok := counts[p.RoomID]; ok {
			counts[p.RoomID]++
		}
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes
}

// --- Fake repositories over the shared store ---

type fakeEventRepo struct{ s *fakeStore }

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failEventCreates > 0 {
		r.s.failEventCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, e := range r.s.events {
		if e.Code == event.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	r.s.nextEventID++
	event.ID = r.s.nextEventID
	r.s.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) FindByCode(_ context.Context, code string) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) FindAll(_ context.Context) ([]models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var events []models.Event
	for _, e := range r.s.events {
		events = append(events, *e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, id uint, status models.EventStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Status = status
	return nil
}

type fakeGuestRepo struct{ s *fakeStore }

func (r *fakeGuestRepo) Create(_ context.Context, guest *models.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextGuestID++
	guest.ID = r.s.nextGuestID
	copied := *guest
	r.s.guests = append(r.s.guests, &copied)
	return nil
}

func (r *fakeGuestRepo) CreateAll(ctx context.Context, guests []models.Guest) error {
	for i := range guests {
		if err := r.Create(ctx, &guests[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeGuestRepo) FindByID(_ context.Context, id uint) (*models.Guest, error) {
	if g := r.s.guest(id); g != nil {
		copied := *g
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) FindByEvent(_ context.Context, eventID uint) ([]models.Guest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var guests []models.Guest
	for _, g := range r.s.guests {
		if g.EventID == eventID {
			guests = append(guests, *g)
		}
	}
	sort.Slice(guests, func(i, j int) bool {
		if guests[i].CreatedAt.Equal(guests[j].CreatedAt) {
			return guests[i].ID < guests[j].ID
		}
		return guests[i].CreatedAt.Before(guests[j].CreatedAt)
	})
	return guests, nil
}

func (r *fakeGuestRepo) FindBadged(_ context.Context, eventID uint) ([]models.Guest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var guests []models.Guest
	for _, g := range r.s.guests {
		if g.EventID == eventID && g.BadgeNumber != nil {
			guests = append(guests, *g)
		}
	}
	sort.Slice(guests, func(i, j int) bool { return *guests[i].BadgeNumber < *guests[j].BadgeNumber })
	return guests, nil
}

func (r *fakeGuestRepo) FindByBadge(_ context.Context, eventID uint, badge int) (*models.Guest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guests {
		if g.EventID == eventID && g.BadgeNumber != nil && *g.BadgeNumber == badge {
			copied := *g
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) UpdateBadgeNumber(_ context.Context, guestID uint, badge int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failBadgeUpdateAfter >= 0 && r.s.badgeUpdates >= r.s.failBadgeUpdateAfter {
		return errors.New("db connection failed")
	}
	for _, g := range r.s.guests {
		if g.ID == guestID {
			b := badge
			g.BadgeNumber = &b
			r.s.badgeUpdates++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) UpdatePartner(_ context.Context, guestID uint, partnerID *uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guests {
		if g.ID == guestID {
			if partnerID == nil {
				g.PartnerID = nil
			} else {
				p := *partnerID
				g.PartnerID = &p
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) ClearPartners(_ context.Context, eventID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guests {
		if g.EventID == eventID {
			g.PartnerID = nil
		}
	}
	return nil
}

func (r *fakeGuestRepo) UpdateProfile(_ context.Context, guestID uint, fields map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guests {
		if g.ID == guestID {
			if v, ok := fields["full_name"].(string); ok {
				g.FullName = v
			}
			if v, ok := fields["email"].(string); ok {
				g.Email = v
			}
			if v, ok := fields["company"].(string); ok {
				g.Company = v
			}
			if v, ok := fields["role"].(string); ok {
				g.Role = v
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) MarkFound(_ context.Context, guestID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.guests {
		if g.ID == guestID {
			g.Found = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeRoomRepo struct{ s *fakeStore }

func (r *fakeRoomRepo) CreateBatch(_ context.Context, rooms []models.Room) ([]models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range rooms {
		r.s.nextRoomID++
		rooms[i].ID = r.s.nextRoomID
		copied := rooms[i]
		r.s.rooms = append(r.s.rooms, &copied)
	}
	return rooms, nil
}

func (r *fakeRoomRepo) FindByEvent(_ context.Context, eventID uint) ([]models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var rooms []models.Room
	for _, room := range r.s.rooms {
		if room.EventID == eventID {
			rooms = append(rooms, *room)
		}
	}
	return rooms, nil
}

func (r *fakeRoomRepo) DeleteByEvent(_ context.Context, eventID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.rooms[:0]
	for _, room := range r.s.rooms {
		if room.EventID != eventID {
			kept = append(kept, room)
		}
	}
	r.s.rooms = kept
	return nil
}

type fakeParticipantRepo struct{ s *fakeStore }

func (r *fakeParticipantRepo) UpsertAll(_ context.Context, participants []models.RoomParticipant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := make(map[[2]uint]bool)
	for _, p := range r.s.participants {
		seen[[2]uint{p.RoomID, p.GuestID}] = true
	}
	for _, p := range participants {
		key := [2]uint{p.RoomID, p.GuestID}
		if seen[key] {
			continue
		}
		seen[key] = true
		r.s.participants = append(r.s.participants, p)
	}
	return nil
}

func (r *fakeParticipantRepo) FindByEvent(_ context.Context, eventID uint) ([]models.RoomParticipant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var participants []models.RoomParticipant
	for _, p := range r.s.participants {
		if p.EventID == eventID {
			participants = append(participants, p)
		}
	}
	return participants, nil
}

func (r *fakeParticipantRepo) DeleteByEvent(_ context.Context, eventID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.participants[:0]
	for _, p := range r.s.participants {
		if p.EventID != eventID {
			kept = append(kept, p)
		}
	}
	r.s.participants = kept
	return nil
}

// --- Helpers ---

func newStarter(store *fakeStore, seed int64) StarterService {
	return NewStarterService(
		&fakeEventRepo{s: store},
		&fakeGuestRepo{s: store},
		&fakeRoomRepo{s: store},
		&fakeParticipantRepo{s: store},
		lock.New(nil, time.Minute),
		nil, // nil publisher = skip RabbitMQ
		NewRand(seed),
	)
}

// --- Badge assigner ---

func TestAssignBadges_RegistrationOrder(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 5)
	svc := newStarter(store, 1)

	assigned, err := svc.AssignBadges(context.Background(), event.ID)

	assert.NoError(t, err)
	assert.Equal(t, 5, assigned)
	for i, g := range store.guests {
		assert.NotNil(t, g.BadgeNumber)
		assert.Equal(t, i+1, *g.BadgeNumber)
	}
}

func TestAssignBadges_SecondRunAssignsNothing(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 4)
	svc := newStarter(store, 1)

	_, err := svc.AssignBadges(context.Background(), event.ID)
	assert.NoError(t, err)

	assigned, err := svc.AssignBadges(context.Background(), event.ID)

	assert.NoError(t, err)
	assert.Equal(t, 0, assigned)
}

func TestAssignBadges_ExtendsExistingSequence(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 3)
	svc := newStarter(store, 1)

	_, err := svc.AssignBadges(context.Background(), event.ID)
	assert.NoError(t, err)

	store.addGuests(event.ID, 2)
	assigned, err := svc.AssignBadges(context.Background(), event.ID)

	assert.NoError(t, err)
	assert.Equal(t, 2, assigned)
	assert.Equal(t, 4, *store.guests[3].BadgeNumber)
	assert.Equal(t, 5, *store.guests[4].BadgeNumber)
	// earlier badges untouched
	assert.Equal(t, 1, *store.guests[0].BadgeNumber)
}

func TestAssignBadges_PartialFailureKeepsCommitted(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 5)
	store.failBadgeUpdateAfter = 2
	svc := newStarter(store, 1)

	_, err := svc.AssignBadges(context.Background(), event.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
	assert.Equal(t, 1, *store.guests[0].BadgeNumber)
	assert.Equal(t, 2, *store.guests[1].BadgeNumber)
	assert.Nil(t, store.guests[2].BadgeNumber)

	// retry only touches guests still missing a badge
	store.failBadgeUpdateAfter = -1
	assigned, err := svc.AssignBadges(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, assigned)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, badgeSet(store, event.ID))
}

// badgeSet returns the sorted badge numbers assigned in the event.
func badgeSet(store *fakeStore, eventID uint) []int {
	var badges []int
	for _, g := range store.guests {
		if g.EventID == eventID && g.BadgeNumber != nil {
			badges = append(badges, *g.BadgeNumber)
		}
	}
	sort.Ints(badges)
	return badges
}

// --- Orchestrator ---

func TestStartEvent_MissingReference(t *testing.T) {
	svc := newStarter(newFakeStore(), 1)

	summary, err := svc.StartEvent(context.Background(), StartParams{})

	assert.ErrorIs(t, err, ErrMissingEventRef)
	assert.Nil(t, summary)
}

func TestStartEvent_UnknownEvent(t *testing.T) {
	svc := newStarter(newFakeStore(), 1)

	_, err := svc.StartEvent(context.Background(), StartParams{EventID: 42})
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.StartEvent(context.Background(), StartParams{EventCode: "NOPE42"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestStartEvent_ResolvesByCode(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("JOIN42")
	store.addGuests(event.ID, 4)
	svc := newStarter(store, 1)

	summary, err := svc.StartEvent(context.Background(), StartParams{EventCode: "JOIN42"})

	assert.NoError(t, err)
	assert.Equal(t, event.ID, summary.EventID)
}

func TestStartEvent_SetsEventLive(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 6)
	svc := newStarter(store, 1)

	_, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusLive, store.events[event.ID].Status)
}

func TestStartEvent_Counts(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 10)
	svc := newStarter(store, 7)

	summary, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})

	assert.NoError(t, err)
	assert.Equal(t, 10, summary.AssignedBadges)
	assert.Equal(t, 5, summary.PairsCreated)
	assert.Equal(t, len(store.roomSizes(event.ID)), summary.RoomsCreated)

	total := 0
	for _, s := range summary.Rooms {
		total += s.Members
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, badgeSet(store, event.ID))
}

func TestStartEvent_RoomSizesWithinBounds(t *testing.T) {
	const minSize, maxSize = 2, 6
	for guests := 2; guests <= 15; guests++ {
		for seed := int64(0); seed < 20; seed++ {
			store := newFakeStore()
			event := store.addEvent("AAAAAA")
			store.addGuests(event.ID, guests)
			svc := newStarter(store, seed)

			_, err := svc.StartEvent(context.Background(), StartParams{
				EventID:     event.ID,
				MinRoomSize: minSize,
				MaxRoomSize: maxSize,
			})
			assert.NoError(t, err)

			sizes := store.roomSizes(event.ID)
			total := 0
			for i, size := range sizes {
				total += size
				assert.GreaterOrEqual(t, size, minSize,
					"guests=%d seed=%d sizes=%v", guests, seed, sizes)
				if i == len(sizes)-1 {
					// last room may have absorbed a remainder below minSize
					assert.LessOrEqual(t, size, maxSize+minSize-1,
						"guests=%d seed=%d sizes=%v", guests, seed, sizes)
				} else {
					assert.LessOrEqual(t, size, maxSize,
						"guests=%d seed=%d sizes=%v", guests, seed, sizes)
				}
			}
			assert.Equal(t, guests, total, "guests=%d seed=%d sizes=%v", guests, seed, sizes)
		}
	}
}

func TestStartEvent_SevenGuestsNeverSoloRoom(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		store := newFakeStore()
		event := store.addEvent("AAAAAA")
		store.addGuests(event.ID, 7)
		svc := newStarter(store, seed)

		_, err := svc.StartEvent(context.Background(), StartParams{
			EventID:     event.ID,
			MinRoomSize: 2,
			MaxRoomSize: 6,
		})
		assert.NoError(t, err)

		for _, size := range store.roomSizes(event.ID) {
			assert.NotEqual(t, 1, size, "seed=%d sizes=%v", seed, store.roomSizes(event.ID))
		}
	}
}

func TestStartEvent_NoGuests(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	svc := newStarter(store, 1)

	summary, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.AssignedBadges)
	assert.Equal(t, 0, summary.RoomsCreated)
	assert.Equal(t, 0, summary.PairsCreated)
	assert.Equal(t, models.StatusLive, store.events[event.ID].Status)
}

func TestStartEvent_SingleGuest(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 1)
	svc := newStarter(store, 1)

	summary, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.RoomsCreated)
	assert.Equal(t, []int{1}, store.roomSizes(event.ID))
	assert.Equal(t, 0, summary.PairsCreated)
	assert.Nil(t, store.guests[0].PartnerID)
}

func TestStartEvent_PairSymmetry(t *testing.T) {
	for _, guests := range []int{2, 6, 9, 12} {
		store := newFakeStore()
		event := store.addEvent("AAAAAA")
		store.addGuests(event.ID, guests)
		svc := newStarter(store, 3)

		summary, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
		assert.NoError(t, err)
		assert.Equal(t, guests/2, summary.PairsCreated)

		unpaired := 0
		for _, g := range store.guests {
			if g.PartnerID == nil {
				unpaired++
				continue
			}
			partner := store.guest(*g.PartnerID)
			assert.NotNil(t, partner)
			assert.NotNil(t, partner.PartnerID)
			assert.Equal(t, g.ID, *partner.PartnerID, "guests=%d", guests)
		}
		if guests%2 == 0 {
			assert.Equal(t, 0, unpaired)
		} else {
			assert.Equal(t, 1, unpaired)
		}
	}
}

func TestStartEvent_RerunReplacesRooms(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 8)
	svc := newStarter(store, 5)

	first, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
	assert.NoError(t, err)

	second, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
	assert.NoError(t, err)

	// only the latest generation of rooms remains
	assert.Len(t, store.roomSizes(event.ID), second.RoomsCreated)
	assert.Equal(t, 0, second.AssignedBadges)
	assert.NotZero(t, first.RoomsCreated)

	// every membership row points at a live room, no duplicates
	roomIDs := make(map[uint]bool)
	for _, r := range store.rooms {
		roomIDs[r.ID] = true
	}
	seen := make(map[[2]uint]bool)
	for _, p := range store.participants {
		assert.True(t, roomIDs[p.RoomID])
		key := [2]uint{p.RoomID, p.GuestID}
		assert.False(t, seen[key], "duplicate membership %v", key)
		seen[key] = true
	}

	// pairing stayed symmetric after the re-run
	for _, g := range store.guests {
		if g.PartnerID != nil {
			partner := store.guest(*g.PartnerID)
			assert.Equal(t, g.ID, *partner.PartnerID)
		}
	}
}

func TestStartEvent_MembershipRewriteIsNoop(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 6)
	svc := newStarter(store, 2)

	_, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
	assert.NoError(t, err)

	repo := &fakeParticipantRepo{s: store}
	rows, err := repo.FindByEvent(context.Background(), event.ID)
	assert.NoError(t, err)

	assert.NoError(t, repo.UpsertAll(context.Background(), rows))

	after, err := repo.FindByEvent(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Len(t, after, len(rows))
}

func TestStartEvent_RejectedWhileLeaseHeld(t *testing.T) {
	store := newFakeStore()
	event := store.addEvent("AAAAAA")
	store.addGuests(event.ID, 4)

	locks := lock.New(nil, time.Minute)
	svc := NewStarterService(
		&fakeEventRepo{s: store},
		&fakeGuestRepo{s: store},
		&fakeRoomRepo{s: store},
		&fakeParticipantRepo{s: store},
		locks,
		nil,
		NewRand(1),
	)

	release, err := locks.Acquire(context.Background(), startLeaseKey(event.ID))
	assert.NoError(t, err)

	_, err = svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
	assert.ErrorIs(t, err, ErrStartInProgress)

	release()
	_, err = svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
	assert.NoError(t, err)
}

func TestStartEvent_DeterministicForSeed(t *testing.T) {
	run := func(seed int64) ([]int, map[uint]uint) {
		store := newFakeStore()
		event := store.addEvent("AAAAAA")
		store.addGuests(event.ID, 11)
		svc := newStarter(store, seed)

		_, err := svc.StartEvent(context.Background(), StartParams{EventID: event.ID})
		assert.NoError(t, err)

		partners := make(map[uint]uint)
		for _, g := range store.guests {
			if g.PartnerID != nil {
				partners[g.ID] = *g.PartnerID
			}
		}
		return store.roomSizes(event.ID), partners
	}

	sizesA, partnersA := run(99)
	sizesB, partnersB := run(99)
	assert.Equal(t, sizesA, sizesB)
	assert.Equal(t, partnersA, partnersB)
}

func TestClampRoomSizes(t *testing.T) {
	tests := []struct {
		name             string
		min, max         int
		wantMin, wantMax int
	}{
		{"defaults", 0, 0, 2, 6},
		{"min floored to two", 1, 10, 2, 10},
		{"max floored to min", 4, 3, 4, 4},
		{"max defaulted", 3, 0, 3, 6},
		{"both clamped", 0, 1, 2, 2},
		{"passthrough", 5, 8, 5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := clampRoomSizes(tt.min, tt.max)
			assert.Equal(t, tt.wantMin, gotMin)
			assert.Equal(t, tt.wantMax, gotMax)
		})
	}
}
