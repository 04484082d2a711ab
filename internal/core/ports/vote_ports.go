package ports

import (
	"context"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
)

type VoteRepository interface {
	SaveVote(ctx context.Context, vote *domain.Vote) error
}

type VoteInput struct {
	UniqueLink      string
	ParticipantName string
	SelectedSlots   []string
}

type VoteService interface {
	SubmitVote(ctx context.Context, input VoteInput) error
}
