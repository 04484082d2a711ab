package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type EventHandler struct {
	service  ports.EventService
	messages *Messages
	logger   *slog.Logger
}

func NewEventHandler(service ports.EventService, messages *Messages, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service:  service,
		messages: messages,
		logger:   logger,
	}
}

type CreateEventRequest struct {
	Title     string   `json:"title" example:"Team Dinner"`
	TimeSlots []string `json:"timeSlots" example:"Fri 7pm,Sat 6pm"`
}

type CreateEventResponse struct {
	Message    string `json:"message" example:"活动创建成功！"`
	EventID    int64  `json:"eventId" example:"1"`
	UniqueLink string `json:"uniqueLink" example:"V1StGXR8_Z"`
}

type EventResponse struct {
	Title     string   `json:"title" example:"Team Dinner"`
	TimeSlots []string `json:"timeSlots" example:"Fri 7pm,Sat 6pm"`
}

// CreateEvent godoc
// @Summary      Create an event
// @Description  Stores a titled event with its candidate time slots and returns the share link.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      CreateEventRequest  true  "Event to create"
// @Success      201    {object}  CreateEventResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      413    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, r, h.messages, err)
		return
	}

	created, err := h.service.CreateEvent(r.Context(), ports.CreateEventInput{
		Title:     req.Title,
		TimeSlots: req.TimeSlots,
	})
	if err != nil {
		h.writeServiceError(w, r, err, MsgEventInvalid)
		return
	}

	writeJSON(w, http.StatusCreated, CreateEventResponse{
		Message:    h.messages.For(r, MsgEventCreated),
		EventID:    created.EventID,
		UniqueLink: created.UniqueLink,
	})
}

// GetEvent godoc
// @Summary      Get an event
// @Description  Returns the title and time slots of the event behind a share link.
// @Tags         events
// @Produce      json
// @Param        uniqueLink  path      string  true  "Share link token"
// @Success      200         {object}  EventResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /api/events/{uniqueLink} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	link := chi.URLParam(r, "uniqueLink")

	event, err := h.service.GetEventByLink(r.Context(), link)
	if err != nil {
		h.writeServiceError(w, r, err, MsgEventInvalid)
		return
	}

	writeJSON(w, http.StatusOK, EventResponse{
		Title:     event.Title,
		TimeSlots: event.TimeSlots,
	})
}

func (h *EventHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, invalidMsg string) {
	writeServiceError(w, r, h.logger, h.messages, err, invalidMsg)
}

// writeServiceError maps the domain error taxonomy onto status codes.
// Anything unexpected is logged and reported as a 500 without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, messages *Messages, err error, invalidMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, messages.For(r, invalidMsg))
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, messages.For(r, MsgEventNotFound))
	default:
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, messages.For(r, MsgInternalError))
	}
}
