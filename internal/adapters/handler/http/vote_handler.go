package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type VoteHandler struct {
	service  ports.VoteService
	messages *Messages
	logger   *slog.Logger
}

func NewVoteHandler(service ports.VoteService, messages *Messages, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		service:  service,
		messages: messages,
		logger:   logger,
	}
}

type VoteRequest struct {
	ParticipantName string   `json:"participantName" example:"Bob"`
	SelectedSlots   []string `json:"selectedSlots" example:"Fri 7pm"`
}

// SubmitVote godoc
// @Summary      Vote on an event
// @Description  Appends a participant's selected slots to the event. Repeated votes are kept as separate entries.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        uniqueLink  path      string       true  "Share link token"
// @Param        vote        body      VoteRequest  true  "Participant and chosen slots"
// @Success      201         {object}  MessageResponse
// @Failure      400         {object}  ErrorResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      413         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /api/events/{uniqueLink}/vote [post]
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, r, h.messages, err)
		return
	}

	input := ports.VoteInput{
		UniqueLink:      chi.URLParam(r, "uniqueLink"),
		ParticipantName: req.ParticipantName,
		SelectedSlots:   req.SelectedSlots,
	}

	if err := h.service.SubmitVote(r.Context(), input); err != nil {
		writeServiceError(w, r, h.logger, h.messages, err, MsgVoteInvalid)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: h.messages.For(r, MsgVoteSubmitted)})
}
