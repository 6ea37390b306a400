package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/service"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// HandleCreate handles POST /api/v1/events requests.
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	event, err := h.service.Create(r.Context(), req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.Is(err, service.ErrEventQuotaReached):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		default:
			serverError(w, "create event", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// HandleList handles GET /api/v1/events requests.
func (h *EventHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		serverError(w, "list events", err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// HandleGet handles GET /api/v1/events/{event_id} requests.
func (h *EventHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		serverError(w, "get event", err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleReplaceGuests handles PUT /api/v1/events/{event_id}/guests
// requests. The guest list is replaced in full; an explicit empty
// array clears it, while omitting the field is a caller error.
func (h *EventHandler) HandleReplaceGuests(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req model.UpdateGuestsRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	event, err := h.service.ReplaceGuests(r.Context(), id, req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.Is(err, service.ErrGuestsRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			serverError(w, "replace guests", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleReplaceBudget handles PUT /api/v1/events/{event_id}/budget
// requests. Budget total and expenses are replaced together.
func (h *EventHandler) HandleReplaceBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var req model.UpdateBudgetRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	event, err := h.service.ReplaceBudget(r.Context(), id, req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			serverError(w, "replace budget", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleDelete handles DELETE /api/v1/events/{event_id} requests.
func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		serverError(w, "delete event", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func eventID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "event_id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return "", false
	}
	return id, true
}
