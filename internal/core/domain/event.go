package domain

// Event is a scheduling proposal. ID is internal; clients only ever see
// UniqueLink.
type Event struct {
	ID         int64
	Title      string
	TimeSlots  []string
	UniqueLink string
}
