package timeline

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// NavigationState holds one independent offset counter per zoom level plus
// the reference date the windows pivot around. It is an explicit value object
// owned by whoever drives the timeline; multiple instances never share state.
type NavigationState struct {
	Level domain.ZoomLevel

	WeekOffset    int
	MonthOffset   int
	QuarterOffset int
	YearOffset    int

	ReferenceDate time.Time

	// Now supplies the current time; swapped out in tests.
	Now func() time.Time
}

// NewNavigationState starts at the week level anchored on today.
func NewNavigationState() *NavigationState {
	n := &NavigationState{Level: domain.ZoomWeek, Now: time.Now}
	n.ReferenceDate = n.Now().UTC()
	return n
}

// Offset returns the counter for the active zoom level.
func (n *NavigationState) Offset() int {
	switch n.Level {
	case domain.ZoomMonth:
		return n.MonthOffset
	case domain.ZoomQuarter:
		return n.QuarterOffset
	case domain.ZoomYear:
		return n.YearOffset
	default:
		return n.WeekOffset
	}
}

func (n *NavigationState) shift(delta int) {
	switch n.Level {
	case domain.ZoomMonth:
		n.MonthOffset += delta
	case domain.ZoomQuarter:
		n.QuarterOffset += delta
	case domain.ZoomYear:
		n.YearOffset += delta
	default:
		n.WeekOffset += delta
	}
}

// Previous moves the active level one unit back. Other levels are untouched.
func (n *NavigationState) Previous() { n.shift(-1) }

// Next moves the active level one unit forward.
func (n *NavigationState) Next() { n.shift(1) }

// Today zeroes the active level's offset and re-anchors on the current date.
func (n *NavigationState) Today() {
	switch n.Level {
	case domain.ZoomMonth:
		n.MonthOffset = 0
	case domain.ZoomQuarter:
		n.QuarterOffset = 0
	case domain.ZoomYear:
		n.YearOffset = 0
	default:
		n.WeekOffset = 0
	}
	n.ReferenceDate = n.Now().UTC()
}

// SetZoomLevel switches the active level. Every offset is zeroed and the
// reference date re-anchored on today, so each zoom switch lands on the
// current period.
func (n *NavigationState) SetZoomLevel(level domain.ZoomLevel) error {
	if _, err := domain.ParseZoomLevel(string(level)); err != nil {
		return err
	}
	n.Level = level
	n.WeekOffset = 0
	n.MonthOffset = 0
	n.QuarterOffset = 0
	n.YearOffset = 0
	n.ReferenceDate = n.Now().UTC()
	return nil
}

// Window computes the visible window for the current navigation state.
func (n *NavigationState) Window() (Window, error) {
	return ComputeWindow(n.Level, n.Offset(), n.ReferenceDate)
}
