package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderTransformsEveryPoint(t *testing.T) {
	b := NewBuilder(10)
	b.MoveTo(1, 2)
	b.LineTo(3, -4)
	b.QuadTo(5, 6, 7, 8)
	b.CubeTo(1, 1, 2, 2, 3, 3)
	b.Close()

	want := "M 11 -2 L 13 4 Q 15 -6 17 -8 C 11 -1 12 -2 13 -3 Z "
	assert.Equal(t, want, b.String())
	assert.Equal(t, float32(10), b.Offset())
}

func TestBuilderFirstMoveTo(t *testing.T) {
	cases := []struct {
		x, y, offset float32
		want         string
	}{
		{0, 0, 0, "M 0 -0 "},
		{100, 700, 0, "M 100 -700 "},
		{100, -200, 1229, "M 1329 200 "},
		{0.5, 0.25, 3.125, "M 3.625 -0.25 "},
	}
	for _, c := range cases {
		b := NewBuilder(c.offset)
		b.MoveTo(c.x, c.y)
		b.LineTo(1, 1)
		require.GreaterOrEqual(t, b.Len(), len(c.want))
		assert.Equal(t, c.want, b.String()[:len(c.want)])
	}
}

func TestBuilderEmptyProgram(t *testing.T) {
	assert.Equal(t, "", Render(nil, 42))
	assert.Equal(t, 0, NewBuilder(7).Len())
}

func TestBuilderCloseWithoutMove(t *testing.T) {
	assert.Equal(t, "Z ", Render(Events{Close()}, 5))
	assert.Equal(t, "Z Z ", Render(Events{Close(), Close()}, 0))
}

func TestBuilderDeterministic(t *testing.T) {
	events := Events{
		MoveTo(12.5, 700),
		QuadTo(300.25, 720, 512, 0),
		CubeTo(1, 2, 3, 4, 5, 6),
		LineTo(12.5, 700),
		Close(),
	}
	first := Render(events, 1234.5)
	second := Render(events, 1234.5)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, Render(events, 0))
}

func TestFormatNumberPrecision(t *testing.T) {
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "1000000", FormatNumber(1e6))
	assert.Equal(t, "0.000001", FormatNumber(1e-6))
	assert.Equal(t, "-0", FormatNumber(float32(negZero())))
	assert.Equal(t, "16777216", FormatNumber(1<<24))
}

func negZero() float32 {
	var z float32
	return -z
}

func TestRecorderReplayRoundTrip(t *testing.T) {
	var rec Recorder
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.QuadTo(5, 6, 7, 8)
	rec.CubeTo(9, 10, 11, 12, 13, 14)
	rec.Close()
	require.Len(t, rec.Events, 5)

	var again Recorder
	rec.Events.Replay(&again)
	assert.Equal(t, rec.Events, again.Events)

	assert.Len(t, rec.Events[0].Args(), 1)
	assert.Len(t, rec.Events[2].Args(), 2)
	assert.Len(t, rec.Events[3].Args(), 3)
	assert.Empty(t, rec.Events[4].Args())
}

func TestOpString(t *testing.T) {
	got := ""
	for _, op := range []Op{OpMoveTo, OpLineTo, OpQuadTo, OpCubeTo, OpClose} {
		got += op.String()
	}
	assert.Equal(t, "MLQCZ", got)
}
