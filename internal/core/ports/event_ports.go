package ports

import (
	"context"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
)

type EventRepository interface {
	Save(ctx context.Context, event *domain.Event) error
	GetByUniqueLink(ctx context.Context, uniqueLink string) (*domain.Event, error)
}

// LinkGenerator hands out the public token of a new event.
type LinkGenerator interface {
	NewLink() (string, error)
}

type CreateEventInput struct {
	Title     string
	TimeSlots []string
}

type CreatedEvent struct {
	EventID    int64
	UniqueLink string
}

type EventView struct {
	Title     string
	TimeSlots []string
}

type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*CreatedEvent, error)
	GetEventByLink(ctx context.Context, uniqueLink string) (*EventView, error)
}
