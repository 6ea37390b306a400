package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventQuotaReached = errors.New("event limit of 3 reached")
	ErrGuestsRequired    = errors.New("guests field is required")
)

// EventStore is the persistence surface EventService depends on.
// Implementations return repository.ErrEventNotFound when an id does
// not resolve, and guarantee each Replace* call is a single atomic
// document write.
type EventStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	ReplaceGuests(ctx context.Context, id string, guests []model.Guest) (*model.Event, error)
	ReplaceBudget(ctx context.Context, id string, budget float64, expenses []model.Expense) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService handles event aggregate business logic.
type EventService struct {
	store EventStore
	quota int
	now   func() time.Time
}

// NewEventService creates a new EventService enforcing the given
// system-wide event quota.
func NewEventService(store EventStore, quota int) *EventService {
	return &EventService{
		store: store,
		quota: quota,
		now:   time.Now,
	}
}

// Create validates and stores a new event. The quota check is a plain
// count-then-insert: two concurrent creates at the boundary can
// transiently overshoot the cap, which is acceptable at this scale.
// The date check happens once, here; a date equal to now passes.
func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= s.quota {
		return nil, ErrEventQuotaReached
	}

	if err := req.Validate(s.now()); err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests == nil {
		guests = []model.Guest{}
	}
	for i := range guests {
		if guests[i].RSVPStatus == "" {
			guests[i].RSVPStatus = model.RSVPPending
		}
	}

	event := &model.Event{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Guests:      guests,
		Expenses:    []model.Expense{},
	}

	if err := s.store.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetByID retrieves a single event with its embedded collections.
func (s *EventService) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return event, nil
}

// List retrieves all events.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.store.List(ctx)
}

// ReplaceGuests overwrites an event's entire guest list in one write.
// A nil Guests field means the caller omitted it, which is an error;
// an explicit empty list clears all guests.
func (s *EventService) ReplaceGuests(ctx context.Context, id string, req model.UpdateGuestsRequest) (*model.Event, error) {
	if req.Guests == nil {
		return nil, ErrGuestsRequired
	}

	guests := *req.Guests
	if err := model.ValidateGuests(guests); err != nil {
		return nil, err
	}
	for i := range guests {
		if guests[i].RSVPStatus == "" {
			guests[i].RSVPStatus = model.RSVPPending
		}
	}

	event, err := s.store.ReplaceGuests(ctx, id, guests)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return event, nil
}

// ReplaceBudget overwrites an event's budget total and expense list
// together in one write. The budget is a user-set ceiling and the
// expenses are actuals; their sums are deliberately not cross-checked.
func (s *EventService) ReplaceBudget(ctx context.Context, id string, req model.UpdateBudgetRequest) (*model.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.store.ReplaceBudget(ctx, id, req.Budget, req.Expenses)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return event, nil
}

// Delete removes an event and all its embedded guests and expenses.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrEventNotFound) {
		return ErrEventNotFound
	}
	return err
}
