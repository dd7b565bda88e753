package contract

// BarGeometry places an item bar within the visible window. Offsets and
// widths are percentages of the window width; offsets may fall outside
// [0, 100) when the item extends beyond the visible range.
type BarGeometry struct {
	OffsetPct float64
	WidthPct  float64
}

// PointMarker places a single date at a cell midpoint. Visible is false when
// the date falls outside the window; consumers must not render it.
type PointMarker struct {
	OffsetPct float64
	Visible   bool
}

// Point is a connector waypoint: X in window percent, Y in row units.
type Point struct {
	X float64
	Y float64
}

// ConnectorPath is an orthogonal dependency connector from the end of the
// predecessor bar to the start of the successor bar.
type ConnectorPath struct {
	FromID string
	ToID   string
	Points []Point
}
