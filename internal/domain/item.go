package domain

import "time"

// ScheduleItem is a schedulable unit rendered as one row on the timeline.
// Dates are inclusive calendar dates held at UTC; a drag can leave a half-day
// (12:00) component on either bound.
type ScheduleItem struct {
	ID              string
	Title           string
	Kind            ItemKind
	StartDate       time.Time
	EndDate         time.Time
	Dependencies    []string
	OrderIndex      int
	ProgressPercent int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationDays returns the inclusive span of the item in days.
func (s *ScheduleItem) DurationDays() float64 {
	return s.EndDate.Sub(s.StartDate).Hours()/24 + 1
}

// Validate checks the structural invariants of the item.
func (s *ScheduleItem) Validate() error {
	if s.ID == "" {
		return ErrMissingID
	}
	if s.EndDate.Before(s.StartDate) {
		return ErrInvalidRange
	}
	if s.ProgressPercent < 0 || s.ProgressPercent > 100 {
		return ErrInvalidProgress
	}
	return nil
}
