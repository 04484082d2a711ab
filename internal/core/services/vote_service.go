package services

import (
	"context"
	"errors"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type voteService struct {
	eventRepo ports.EventRepository
	voteRepo  ports.VoteRepository
}

func NewVoteService(eventRepo ports.EventRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		eventRepo: eventRepo,
		voteRepo:  voteRepo,
	}
}

// SubmitVote appends a vote to the event behind input.UniqueLink. The lookup
// and the insert are separate statements; events are never deleted so no
// transaction spans them.
func (s *voteService) SubmitVote(ctx context.Context, input ports.VoteInput) error {
	event, err := s.eventRepo.GetByUniqueLink(ctx, input.UniqueLink)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return internalError("get event", err)
	}

	if err := requireText("participantName", input.ParticipantName); err != nil {
		return err
	}
	if err := requireSlots("selectedSlots", input.SelectedSlots); err != nil {
		return err
	}

	vote := &domain.Vote{
		EventID:         event.ID,
		ParticipantName: input.ParticipantName,
		SelectedSlots:   append([]string(nil), input.SelectedSlots...),
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return internalError("save vote", err)
	}

	return nil
}
