package services

import (
	"context"
	"errors"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
	"github.com/vncsmyrnk/kairos/internal/core/ports"
)

type eventService struct {
	repo  ports.EventRepository
	links ports.LinkGenerator
}

func NewEventService(repo ports.EventRepository, links ports.LinkGenerator) ports.EventService {
	return &eventService{
		repo:  repo,
		links: links,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input ports.CreateEventInput) (*ports.CreatedEvent, error) {
	if err := requireText("title", input.Title); err != nil {
		return nil, err
	}
	if err := requireSlots("timeSlots", input.TimeSlots); err != nil {
		return nil, err
	}

	link, err := s.links.NewLink()
	if err != nil {
		return nil, internalError("generate unique link", err)
	}

	event := &domain.Event{
		Title:      input.Title,
		TimeSlots:  append([]string(nil), input.TimeSlots...),
		UniqueLink: link,
	}

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, internalError("save event", err)
	}

	return &ports.CreatedEvent{
		EventID:    event.ID,
		UniqueLink: event.UniqueLink,
	}, nil
}

func (s *eventService) GetEventByLink(ctx context.Context, uniqueLink string) (*ports.EventView, error) {
	event, err := s.repo.GetByUniqueLink(ctx, uniqueLink)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, internalError("get event", err)
	}

	return &ports.EventView{
		Title:     event.Title,
		TimeSlots: event.TimeSlots,
	}, nil
}
