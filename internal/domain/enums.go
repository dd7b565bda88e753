package domain

type ItemKind string

const (
	KindProject ItemKind = "project"
	KindTask    ItemKind = "task"
)

// ValidItemKinds is the canonical set of accepted item kind strings.
var ValidItemKinds = map[string]bool{
	"project": true, "task": true,
}

type ZoomLevel string

const (
	ZoomWeek    ZoomLevel = "week"
	ZoomMonth   ZoomLevel = "month"
	ZoomQuarter ZoomLevel = "quarter"
	ZoomYear    ZoomLevel = "year"
)

// ParseZoomLevel maps a string onto a ZoomLevel.
func ParseZoomLevel(s string) (ZoomLevel, error) {
	switch ZoomLevel(s) {
	case ZoomWeek, ZoomMonth, ZoomQuarter, ZoomYear:
		return ZoomLevel(s), nil
	}
	return "", ErrInvalidZoomLevel
}

type DragMode string

const (
	DragMove        DragMode = "move"
	DragResizeStart DragMode = "resize_start"
	DragResizeEnd   DragMode = "resize_end"
)
