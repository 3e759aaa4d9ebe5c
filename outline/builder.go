package outline

import "strconv"

// Builder renders a glyph's drawing program as SVG path data.
// Every X is shifted by the glyph's horizontal offset and every Y is negated,
// turning the font's Y-up space into the document's Y-down space.
// Each command is followed by a single space; numbers keep full float32 precision.
type Builder struct {
	buf    []byte
	offset float32
}

var _ Pather = (*Builder)(nil)

// NewBuilder returns a Builder that places the glyph at the given offset.
func NewBuilder(offset float32) *Builder {
	return &Builder{offset: offset}
}

// Render replays events at the given offset and returns the path data.
func Render(events Events, offset float32) string {
	b := NewBuilder(offset)
	events.Replay(b)
	return b.String()
}

// Offset returns the horizontal offset the glyph is drawn at.
func (b *Builder) Offset() float32 { return b.offset }

// Len reports the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// String returns the accumulated path data.
func (b *Builder) String() string { return string(b.buf) }

func (b *Builder) MoveTo(x, y float32) {
	b.op('M')
	b.point(x, y)
}

func (b *Builder) LineTo(x, y float32) {
	b.op('L')
	b.point(x, y)
}

func (b *Builder) QuadTo(cx, cy, x, y float32) {
	b.op('Q')
	b.point(cx, cy)
	b.point(x, y)
}

func (b *Builder) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.op('C')
	b.point(c1x, c1y)
	b.point(c2x, c2y)
	b.point(x, y)
}

func (b *Builder) Close() {
	b.op('Z')
}

func (b *Builder) op(c byte) {
	b.buf = append(b.buf, c, ' ')
}

func (b *Builder) point(x, y float32) {
	b.buf = AppendNumber(b.buf, x+b.offset)
	b.buf = append(b.buf, ' ')
	b.buf = AppendNumber(b.buf, -y)
	b.buf = append(b.buf, ' ')
}

// AppendNumber appends the shortest decimal form of v that round-trips as float32.
// Exponent notation is never used.
func AppendNumber(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'f', -1, 32)
}

// FormatNumber is the string form of AppendNumber.
func FormatNumber(v float32) string {
	return string(AppendNumber(nil, v))
}
