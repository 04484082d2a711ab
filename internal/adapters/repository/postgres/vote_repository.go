package postgres

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
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	slots, err := repository.EncodeSlots(vote.SelectedSlots)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO votes (event_id, participant_name, selected_slots)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query, vote.EventID, vote.ParticipantName, slots).Scan(&vote.ID)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}
