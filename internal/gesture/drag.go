// Package gesture turns pointer movement into schedule mutations: a drag
// state machine for moving and resizing bars, and a row reorder state
// machine. Both assume a single active pointer; at most one session of each
// kind is open at a time.
package gesture

import (
	"math"
	"time"

	"github.com/alexanderramin/chronos/internal/contract"
	"github.com/alexanderramin/chronos/internal/domain"
)

// DragSession is the transient state between pointer-down on a bar and
// pointer-up. While open it exclusively owns the target's date fields.
type DragSession struct {
	TargetID      string
	Mode          domain.DragMode
	AnchorX       float64
	OriginalStart time.Time
	OriginalEnd   time.Time

	// Last accepted dates. Start from the originals and advance with each
	// emitted intent; an invalid proposal leaves them in place.
	curStart time.Time
	curEnd   time.Time
}

// Start returns the last accepted start date of the session.
func (s *DragSession) Start() time.Time { return s.curStart }

// End returns the last accepted end date of the session.
func (s *DragSession) End() time.Time { return s.curEnd }

// DragController converts pointer deltas into half-day-snapped date changes.
// DayPixelWidth is the on-screen width of one day column and must be set
// before Begin.
type DragController struct {
	DayPixelWidth float64

	session *DragSession
}

// SnapHalfDay rounds a raw day delta to the nearest half day.
func SnapHalfDay(raw float64) float64 {
	return math.Round(raw*2) / 2
}

// Begin opens a drag session on the item. Returns nil when a session is
// already open: a pointer-down while dragging another target is ignored
// until the current session closes.
func (c *DragController) Begin(item *domain.ScheduleItem, mode domain.DragMode, pointerX float64) *DragSession {
	if c.session != nil || c.DayPixelWidth <= 0 {
		return nil
	}
	c.session = &DragSession{
		TargetID:      item.ID,
		Mode:          mode,
		AnchorX:       pointerX,
		OriginalStart: item.StartDate,
		OriginalEnd:   item.EndDate,
		curStart:      item.StartDate,
		curEnd:        item.EndDate,
	}
	return c.session
}

// Update processes a pointer-move. It returns the mutation intent for the
// newly accepted delta, or nil when the proposal is invalid, redundant, or
// the handle is stale. Invalid resize proposals keep the gesture open with
// the previous valid state retained.
func (c *DragController) Update(s *DragSession, pointerX float64) *contract.DateChange {
	if s == nil || s != c.session {
		return nil
	}

	deltaDays := SnapHalfDay((pointerX - s.AnchorX) / c.DayPixelWidth)

	switch s.Mode {
	case domain.DragMove:
		newStart := addDays(s.OriginalStart, deltaDays)
		newEnd := addDays(s.OriginalEnd, deltaDays)
		if newStart.Equal(s.curStart) && newEnd.Equal(s.curEnd) {
			return nil
		}
		s.curStart, s.curEnd = newStart, newEnd
		return &contract.DateChange{ItemID: s.TargetID, StartDate: &newStart, EndDate: &newEnd}

	case domain.DragResizeStart:
		newStart := addDays(s.OriginalStart, deltaDays)
		if !newStart.Before(s.curEnd) || newStart.Equal(s.curStart) {
			return nil
		}
		s.curStart = newStart
		return &contract.DateChange{ItemID: s.TargetID, StartDate: &newStart}

	case domain.DragResizeEnd:
		newEnd := addDays(s.OriginalEnd, deltaDays)
		if !newEnd.After(s.curStart) || newEnd.Equal(s.curEnd) {
			return nil
		}
		s.curEnd = newEnd
		return &contract.DateChange{ItemID: s.TargetID, StartDate: nil, EndDate: &newEnd}
	}
	return nil
}

// Finish closes the session. Nothing further is emitted: every accepted
// delta was already dispatched, so an interrupted gesture keeps its partial
// progress rather than rolling back.
func (c *DragController) Finish(s *DragSession) {
	if s != nil && s == c.session {
		c.session = nil
	}
}

// Active returns the open session, or nil when idle.
func (c *DragController) Active() *DragSession { return c.session }

func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}
