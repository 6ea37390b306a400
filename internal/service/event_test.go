package service

import (
	"context"
	"testing"
	"time"

	"github.com/planora/planora-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventService() (*EventService, *memEventStore) {
	store := newMemEventStore()
	return NewEventService(store, 3), store
}

func createEventReq() model.CreateEventRequest {
	return model.CreateEventRequest{
		Name:        "Boda de Ana",
		Date:        time.Now().Add(48 * time.Hour),
		Time:        "18:00",
		Location:    "Jardín Botánico",
		Description: "Ceremonia y banquete",
	}
}

func TestEventCreate_RoundTrip(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventReq()
	req.Guests = []model.Guest{
		{Name: "Juan", Surname: "Pérez", Email: "juan@example.com", Relation: "amigo"},
	}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Name, got.Name)
	assert.Equal(t, req.Time, got.Time)
	assert.Equal(t, req.Location, got.Location)
	assert.Equal(t, req.Description, got.Description)
	require.Len(t, got.Guests, 1)
	assert.Equal(t, "Juan", got.Guests[0].Name)
	assert.Empty(t, got.Expenses)
}

func TestEventCreate_GuestRSVPDefaultsToPending(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventReq()
	req.Guests = []model.Guest{
		{Name: "Juan", Surname: "Pérez"},
		{Name: "Lucía", Surname: "García", RSVPStatus: model.RSVPAccepted},
	}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.RSVPPending, created.Guests[0].RSVPStatus)
	assert.Equal(t, model.RSVPAccepted, created.Guests[1].RSVPStatus)
}

func TestEventCreate_QuotaReached(t *testing.T) {
	svc, store := newTestEventService()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), createEventReq())
		require.NoError(t, err)
	}

	_, err := svc.Create(context.Background(), createEventReq())
	assert.ErrorIs(t, err, ErrEventQuotaReached)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count, "failed create must leave the store untouched")
}

func TestEventCreate_PastDate(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventReq()
	req.Date = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "date", ve.Field)
}

func TestEventCreate_DateEqualToNowPasses(t *testing.T) {
	svc, _ := newTestEventService()

	now := time.Now()
	svc.now = func() time.Time { return now }

	req := createEventReq()
	req.Date = now

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestEventGetByID_NotFound(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventList(t *testing.T) {
	svc, _ := newTestEventService()

	first, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestReplaceGuests_OmittedFieldIsError(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)

	_, err = svc.ReplaceGuests(context.Background(), created.ID, model.UpdateGuestsRequest{})
	assert.ErrorIs(t, err, ErrGuestsRequired)
}

func TestReplaceGuests_EmptyListClears(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventReq()
	req.Guests = []model.Guest{{Name: "Juan", Surname: "Pérez"}}
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	empty := []model.Guest{}
	updated, err := svc.ReplaceGuests(context.Background(), created.ID, model.UpdateGuestsRequest{Guests: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Guests)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Guests)
}

func TestReplaceGuests_Wholesale(t *testing.T) {
	svc, _ := newTestEventService()

	req := createEventReq()
	req.Guests = []model.Guest{
		{Name: "Juan", Surname: "Pérez"},
		{Name: "Lucía", Surname: "García"},
	}
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	replacement := []model.Guest{{Name: "Carlos", Surname: "Ruiz"}}
	updated, err := svc.ReplaceGuests(context.Background(), created.ID, model.UpdateGuestsRequest{Guests: &replacement})
	require.NoError(t, err)
	require.Len(t, updated.Guests, 1)
	assert.Equal(t, "Carlos", updated.Guests[0].Name)
	assert.Equal(t, model.RSVPPending, updated.Guests[0].RSVPStatus)
}

func TestReplaceGuests_BadEmail(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)

	guests := []model.Guest{{Name: "Juan", Surname: "Pérez", Email: "bad@@example"}}
	_, err = svc.ReplaceGuests(context.Background(), created.ID, model.UpdateGuestsRequest{Guests: &guests})
	require.Error(t, err)

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "guests[0].email", ve.Field)
}

func TestReplaceGuests_NotFound(t *testing.T) {
	svc, _ := newTestEventService()

	guests := []model.Guest{}
	_, err := svc.ReplaceGuests(context.Background(), "missing-id", model.UpdateGuestsRequest{Guests: &guests})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestReplaceBudget_RoundTrip(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)

	// The sum of expenses deliberately exceeds the budget total: the
	// two are independent inputs and must both persist as given.
	updated, err := svc.ReplaceBudget(context.Background(), created.ID, model.UpdateBudgetRequest{
		Budget: 1000,
		Expenses: []model.Expense{
			{Name: "Catering", Amount: 800, Category: "Food", Paid: true},
			{Name: "Música", Amount: 400, Category: "Entertainment"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1000), updated.Budget)
	require.Len(t, updated.Expenses, 2)
	assert.False(t, updated.Expenses[1].Paid)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), got.Budget)
	require.Len(t, got.Expenses, 2)
	assert.Equal(t, "Catering", got.Expenses[0].Name)
}

func TestReplaceBudget_NotFound(t *testing.T) {
	svc, _ := newTestEventService()

	_, err := svc.ReplaceBudget(context.Background(), "missing-id", model.UpdateBudgetRequest{Budget: 100})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	svc, _ := newTestEventService()

	created, err := svc.Create(context.Background(), createEventReq())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestEventService()

	err := svc.Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
