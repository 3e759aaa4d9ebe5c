// Package outline records glyph drawing programs and renders them as SVG path data.
package outline

// Pather receives the drawing program of one glyph.
// Coordinates are font units in the font's native Y-up space.
type Pather interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// Op identifies a drawing command.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

// String returns the path-data letter of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpQuadTo:
		return "Q"
	case OpCubeTo:
		return "C"
	case OpClose:
		return "Z"
	default:
		return "?"
	}
}

// Point is a coordinate pair in font units.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Event is one drawing command with its points.
//   - MoveTo, LineTo: Points[0] is the target
//   - QuadTo: Points[0] is the control point, Points[1] the target
//   - CubeTo: Points[0], Points[1] are control points, Points[2] the target
//   - Close: no points
type Event struct {
	Op     Op       `json:"op"`
	Points [3]Point `json:"points"`
}

// Args returns the meaningful points of the event.
func (e Event) Args() []Point {
	switch e.Op {
	case OpMoveTo, OpLineTo:
		return e.Points[:1]
	case OpQuadTo:
		return e.Points[:2]
	case OpCubeTo:
		return e.Points[:3]
	default:
		return nil
	}
}

// Event constructors.

func MoveTo(x, y float32) Event { return Event{Op: OpMoveTo, Points: [3]Point{{x, y}}} }
func LineTo(x, y float32) Event { return Event{Op: OpLineTo, Points: [3]Point{{x, y}}} }
func QuadTo(cx, cy, x, y float32) Event {
	return Event{Op: OpQuadTo, Points: [3]Point{{cx, cy}, {x, y}}}
}
func CubeTo(c1x, c1y, c2x, c2y, x, y float32) Event {
	return Event{Op: OpCubeTo, Points: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}}
}
func Close() Event { return Event{Op: OpClose} }

// Events is a recorded drawing program.
type Events []Event

// Replay feeds the events to p in order.
func (es Events) Replay(p Pather) {
	for _, e := range es {
		switch e.Op {
		case OpMoveTo:
			p.MoveTo(e.Points[0].X, e.Points[0].Y)
		case OpLineTo:
			p.LineTo(e.Points[0].X, e.Points[0].Y)
		case OpQuadTo:
			p.QuadTo(e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y)
		case OpCubeTo:
			p.CubeTo(e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y, e.Points[2].X, e.Points[2].Y)
		case OpClose:
			p.Close()
		}
	}
}

// Recorder is a Pather that keeps every event it receives.
type Recorder struct {
	Events Events
}

var _ Pather = (*Recorder)(nil)

func (r *Recorder) MoveTo(x, y float32) { r.Events = append(r.Events, MoveTo(x, y)) }
func (r *Recorder) LineTo(x, y float32) { r.Events = append(r.Events, LineTo(x, y)) }
func (r *Recorder) QuadTo(cx, cy, x, y float32) {
	r.Events = append(r.Events, QuadTo(cx, cy, x, y))
}
func (r *Recorder) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	r.Events = append(r.Events, CubeTo(c1x, c1y, c2x, c2y, x, y))
}
func (r *Recorder) Close() { r.Events = append(r.Events, Close()) }
