package service

import (
	"context"

	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// memUserStore is an in-memory UserStore used by service tests. It
// mirrors the repository contract, including its sentinel errors and
// the profile-column whitelist.
type memUserStore struct {
	nextID int64
	users  map[int64]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[int64]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	user.ID = s.nextID
	s.nextID++
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) GetByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id int64, req model.UpdateProfileRequest) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Surname != nil {
		u.Surname = *req.Surname
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	copied := *u
	return &copied, nil
}

// memEventStore is an in-memory EventStore preserving insertion order.
type memEventStore struct {
	events []*model.Event
}

func newMemEventStore() *memEventStore {
	return &memEventStore{}
}

func (s *memEventStore) Count(_ context.Context) (int, error) {
	return len(s.events), nil
}

func (s *memEventStore) Create(_ context.Context, event *model.Event) error {
	stored := *event
	s.events = append(s.events, &stored)
	return nil
}

func (s *memEventStore) GetByID(_ context.Context, id string) (*model.Event, error) {
	e, _, err := s.find(id)
	if err != nil {
		return nil, err
	}
	copied := *e
	return &copied, nil
}

func (s *memEventStore) List(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, len(s.events))
	for i, e := range s.events {
		out[i] = *e
	}
	return out, nil
}

func (s *memEventStore) ReplaceGuests(_ context.Context, id string, guests []model.Guest) (*model.Event, error) {
	e, _, err := s.find(id)
	if err != nil {
		return nil, err
	}
	e.Guests = guests
	copied := *e
	return &copied, nil
}

func (s *memEventStore) ReplaceBudget(_ context.Context, id string, budget float64, expenses []model.Expense) (*model.Event, error) {
	e, _, err := s.find(id)
	if err != nil {
		return nil, err
	}
	e.Budget = budget
	e.Expenses = expenses
	copied := *e
	return &copied, nil
}

func (s *memEventStore) Delete(_ context.Context, id string) error {
	_, i, err := s.find(id)
	if err != nil {
		return err
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	return nil
}

func (s *memEventStore) find(id string) (*model.Event, int, error) {
	for i, e := range s.events {
		if e.ID == id {
			return e, i, nil
		}
	}
	return nil, 0, repository.ErrEventNotFound
}
