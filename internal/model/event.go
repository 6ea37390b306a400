package model

import "time"

// RSVP status values for a guest.
const (
	RSVPPending  = "Pending"
	RSVPAccepted = "Accepted"
	RSVPDeclined = "Declined"
)

// Event is the aggregate root for an event plan. Guests and Expenses
// have no identity outside their parent event and are replaced
// wholesale on update.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Budget      float64   `json:"budget"`
	Guests      []Guest   `json:"guests"`
	Expenses    []Expense `json:"expenses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Guest is an invitee embedded in an event.
type Guest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Relation   string `json:"relation,omitempty"`
	Notes      string `json:"notes,omitempty"`
	RSVPStatus string `json:"rsvp_status"`
}

// Expense is a budget line item embedded in an event.
type Expense struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Paid     bool    `json:"paid"`
}

// CreateEventRequest represents an event creation request. Guests may
// be supplied up front; expenses start empty.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Guests      []Guest   `json:"guests"`
}

// UpdateGuestsRequest replaces an event's guest list in full. A nil
// Guests field means the caller omitted it, which is an error; an
// explicit empty array clears the list.
type UpdateGuestsRequest struct {
	Guests *[]Guest `json:"guests"`
}

// UpdateBudgetRequest replaces an event's budget total and expense
// list together. The two are independent inputs: the budget is a
// user-set ceiling, the expenses are actuals, and no cross-check is
// applied between them.
type UpdateBudgetRequest struct {
	Budget   float64   `json:"budget"`
	Expenses []Expense `json:"expenses"`
}
