package domain

import "time"

// Slot represents a bookable time interval of exactly the requested service duration
type Slot struct {
	Start time.Time
	End   time.Time
}
