package domain

// Vote is one participant submission. SelectedSlots are kept as sent and
// are not checked against the event's TimeSlots.
type Vote struct {
	ID              int64
	EventID         int64
	ParticipantName string
	SelectedSlots   []string
}
