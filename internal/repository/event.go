package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/planora/planora-go/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

// eventColumns is the scan order shared by all event queries. Guests
// and expenses are embedded sub-documents stored as JSON columns, so
// every aggregate write is a single row write.
const eventColumns = `id, name, date, time, location, description, budget, guests, expenses, created_at, updated_at`

// EventRepository handles event persistence operations.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Count returns the number of events currently stored.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// Create inserts a new event with its embedded guests and expenses.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	guests, expenses, err := marshalEmbedded(event.Guests, event.Expenses)
	if err != nil {
		return err
	}

	query := `INSERT INTO events (id, name, date, time, location, description, budget, guests, expenses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		event.ID, event.Name, event.Date, event.Time, event.Location,
		event.Description, event.Budget, guests, expenses,
	)
	return err
}

// GetByID retrieves an event with its embedded guests and expenses.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// List retrieves all events, oldest first.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}

	return events, rows.Err()
}

// ReplaceGuests overwrites an event's entire guest list in one write.
func (r *EventRepository) ReplaceGuests(ctx context.Context, id string, guests []model.Guest) (*model.Event, error) {
	data, err := json.Marshal(emptyAsList(guests))
	if err != nil {
		return nil, err
	}

	query := `UPDATE events SET guests = ? WHERE id = ?`
	if err := r.execExpectingRow(ctx, id, query, data, id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// ReplaceBudget overwrites an event's budget total and expense list
// together in one write.
func (r *EventRepository) ReplaceBudget(ctx context.Context, id string, budget float64, expenses []model.Expense) (*model.Event, error) {
	data, err := json.Marshal(emptyExpensesAsList(expenses))
	if err != nil {
		return nil, err
	}

	query := `UPDATE events SET budget = ?, expenses = ? WHERE id = ?`
	if err := r.execExpectingRow(ctx, id, query, budget, data, id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes an event and, with it, all embedded guests and
// expenses.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.execExpectingRow(ctx, id, `DELETE FROM events WHERE id = ?`, id)
}

// execExpectingRow runs a statement that must match the event row
// with the given id, converting a zero-row result into
// ErrEventNotFound.
func (r *EventRepository) execExpectingRow(ctx context.Context, id string, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// An UPDATE that leaves the row byte-identical also reports
		// zero affected rows, so double-check existence.
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*model.Event, error) {
	event := &model.Event{}
	var guests, expenses []byte

	err := row.Scan(
		&event.ID, &event.Name, &event.Date, &event.Time, &event.Location,
		&event.Description, &event.Budget, &guests, &expenses,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(guests, &event.Guests); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(expenses, &event.Expenses); err != nil {
		return nil, err
	}
	return event, nil
}

func marshalEmbedded(guests []model.Guest, expenses []model.Expense) ([]byte, []byte, error) {
	g, err := json.Marshal(emptyAsList(guests))
	if err != nil {
		return nil, nil, err
	}
	e, err := json.Marshal(emptyExpensesAsList(expenses))
	if err != nil {
		return nil, nil, err
	}
	return g, e, nil
}

// emptyAsList keeps nil slices stored as [] rather than JSON null.
func emptyAsList(guests []model.Guest) []model.Guest {
	if guests == nil {
		return []model.Guest{}
	}
	return guests
}

func emptyExpensesAsList(expenses []model.Expense) []model.Expense {
	if expenses == nil {
		return []model.Expense{}
	}
	return expenses
}
