package gesture

import "github.com/alexanderramin/chronos/internal/contract"

// ReorderSession is the transient state of a row drag.
type ReorderSession struct {
	DraggedIndex     int
	CurrentOverIndex int
}

// ReorderController reorders the row list while a row is dragged across
// other rows. Each crossing emits the full renumbered order immediately, so
// the visible order updates live; drop simply closes the session.
type ReorderController struct {
	session *ReorderSession
}

// Begin opens a reorder session for the row at index. Returns nil when a
// session is already open.
func (c *ReorderController) Begin(index int) *ReorderSession {
	if c.session != nil || index < 0 {
		return nil
	}
	c.session = &ReorderSession{DraggedIndex: index, CurrentOverIndex: index}
	return c.session
}

// UpdateOver handles the dragged row crossing the row at overIndex. The ids
// slice is the caller's current display order; the dragged row is spliced in
// at overIndex and every row is renumbered to a contiguous 0-based order.
// The caller must apply the returned order before the next crossing.
func (c *ReorderController) UpdateOver(s *ReorderSession, overIndex int, ids []string) []contract.OrderChange {
	if s == nil || s != c.session {
		return nil
	}
	if overIndex < 0 || overIndex >= len(ids) || s.DraggedIndex >= len(ids) {
		return nil
	}
	if overIndex == s.DraggedIndex {
		return nil
	}

	reordered := splice(ids, s.DraggedIndex, overIndex)
	s.DraggedIndex = overIndex
	s.CurrentOverIndex = overIndex

	changes := make([]contract.OrderChange, len(reordered))
	for i, id := range reordered {
		changes[i] = contract.OrderChange{ItemID: id, OrderIndex: i}
	}
	return changes
}

// Finish closes the session. No additional commit: each crossing already
// emitted its full order.
func (c *ReorderController) Finish(s *ReorderSession) {
	if s != nil && s == c.session {
		c.session = nil
	}
}

// Active returns the open session, or nil when idle.
func (c *ReorderController) Active() *ReorderSession { return c.session }

// splice removes the element at from and reinserts it at to.
func splice(ids []string, from, to int) []string {
	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)
	out = append(out[:to], append([]string{ids[from]}, out[to:]...)...)
	return out
}
