package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints_Scaling(t *testing.T) {
	points := Points([]float64{0, 50, 100}, 100)
	require.Len(t, points, 3)

	// x spans the padded plot area.
	assert.InDelta(t, 16.0, points[0].X, 1e-9)
	assert.InDelta(t, 150.0, points[1].X, 1e-9)
	assert.InDelta(t, 284.0, points[2].X, 1e-9)

	// y is inverted: zero sits on the bottom edge, max on the top.
	assert.InDelta(t, 146.0, points[0].Y, 1e-9)
	assert.InDelta(t, 14.0, points[2].Y, 1e-9)
}

func TestPoints_ZeroMaxFloor(t *testing.T) {
	// An all-zero series must not divide by zero; the scale floors at 1.
	points := Points([]float64{0, 0}, 0)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.InDelta(t, 146.0, p.Y, 1e-9)
	}
}

func TestPathD(t *testing.T) {
	assert.Equal(t, "", PathD(nil))
	assert.Equal(t, "M16.0,146.0", PathD([]Point{{X: 16, Y: 146}}))

	d := PathD([]Point{{X: 16, Y: 146}, {X: 284, Y: 14}})
	assert.Equal(t, "M16.0,146.0 L284.0,14.0", d)
}

func TestRenderSVG(t *testing.T) {
	s := Series{
		Labels:   []string{"May", "Jun"},
		Income:   []float64{100, 200},
		Expenses: []float64{50, 75},
	}

	svg := RenderSVG(s)
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 160">`))
	assert.Contains(t, svg, `stroke="#4ade80"`)
	assert.Contains(t, svg, `stroke="#f87171"`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestSparkline_Length(t *testing.T) {
	line := Sparkline([]float64{0, 1, 2, 3}, "#4ade80")
	// Styling may wrap the runes in escape codes; the four blocks must
	// all be present.
	count := 0
	for _, r := range line {
		for _, spark := range sparkRunes {
			if r == spark {
				count++
				break
			}
		}
	}
	assert.Equal(t, 4, count)
}
