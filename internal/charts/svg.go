package charts

import (
	"fmt"
	"strings"
)

// Fixed chart viewport. All series are mapped into this box.
const (
	viewWidth  = 300.0
	viewHeight = 160.0
	padX       = 16.0
	padY       = 14.0
)

// Point is one plotted coordinate inside the viewport.
type Point struct {
	X float64
	Y float64
}

// maxValue returns the largest value across the given runs, floored at 1
// so an all-zero chart still has a valid scale.
func maxValue(runs ...[]float64) float64 {
	most := 1.0
	for _, run := range runs {
		for _, v := range run {
			if v > most {
				most = v
			}
		}
	}
	return most
}

// Points maps a value run onto viewport coordinates, scaling y against
// maxVal. A single point lands on the left edge of the plot area.
func Points(vals []float64, maxVal float64) []Point {
	if maxVal < 1 {
		maxVal = 1
	}
	points := make([]Point, len(vals))
	plotWidth := viewWidth - 2*padX
	plotHeight := viewHeight - 2*padY

	for i, v := range vals {
		x := padX
		if len(vals) > 1 {
			x = padX + plotWidth*float64(i)/float64(len(vals)-1)
		}
		points[i] = Point{
			X: x,
			Y: viewHeight - padY - (v/maxVal)*plotHeight,
		}
	}
	return points
}

// PathD renders points as an SVG path "d" attribute.
func PathD(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&b, "M%.1f,%.1f", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, " L%.1f,%.1f", p.X, p.Y)
		}
	}
	return b.String()
}

// RenderSVG draws the income and expense lines of a series as a complete
// SVG document, sharing one y scale across both runs.
func RenderSVG(s Series) string {
	maxVal := maxValue(s.Income, s.Expenses)
	incomePath := PathD(Points(s.Income, maxVal))
	expensePath := PathD(Points(s.Expenses, maxVal))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f">`, viewWidth, viewHeight)
	b.WriteString("\n")
	if incomePath != "" {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="#4ade80" stroke-width="2"/>`, incomePath)
		b.WriteString("\n")
	}
	if expensePath != "" {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="#f87171" stroke-width="2"/>`, expensePath)
		b.WriteString("\n")
	}
	for _, p := range Points(s.Income, maxVal) {
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="2.5" fill="#4ade80"/>`, p.X, p.Y)
		b.WriteString("\n")
	}
	for _, p := range Points(s.Expenses, maxVal) {
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="2.5" fill="#f87171"/>`, p.X, p.Y)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}
