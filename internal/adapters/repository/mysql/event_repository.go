package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/kairos/internal/adapters/repository"
	"github.com/vncsmyrnk/kairos/internal/core/domain"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) ports.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Save(ctx context.Context, event *domain.Event) error {
	slots, err := repository.EncodeSlots(event.TimeSlots)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO events (title, time_slots, unique_link) VALUES (?, ?, ?)",
		event.Title, slots, event.UniqueLink,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read event id: %w", err)
	}
	event.ID = id
	return nil
}

func (r *eventRepository) GetByUniqueLink(ctx context.Context, uniqueLink string) (*domain.Event, error) {
	var (
		event domain.Event
		slots string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, time_slots, unique_link FROM events WHERE unique_link = ?",
		uniqueLink,
	).Scan(&event.ID, &event.Title, &slots, &event.UniqueLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.TimeSlots, err = repository.DecodeSlots(slots)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
