package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
	"github.com/vncsmyrnk/kairos/internal/core/domain"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	slots, err := repository.EncodeSlots(vote.SelectedSlots)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO votes (event_id, participant_name, selected_slots) VALUES (?, ?, ?)",
		vote.EventID, vote.ParticipantName, slots,
	)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read vote id: %w", err)
	}
	vote.ID = id
	return nil
}
