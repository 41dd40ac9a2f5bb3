package render

import (
	"image/color"
	"math"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rodrigo-brito/ninjachart/plot"
)

const (
	pieSegments = 128  // 整圆的多边形边数
	pieRadius   = 0.45 // 相对绘图区域短边
)

// pieChart 饼图和环形图，实现 gonum plot.Plotter
type pieChart struct {
	values []float64
	colors []color.NRGBA
	hole   float64 // 内圆半径比例，饼图为 0
}

func newPieChart(series plot.Series) pieChart {
	pie := pieChart{
		values: make([]float64, len(series.Points)),
		colors: make([]color.NRGBA, len(series.Points)),
	}

	for i, point := range series.Points {
		pie.values[i], _ = point.Y.Float()
		if i < len(series.Colors) {
			pie.colors[i] = series.Colors[i]
		}
	}

	if series.Style == plot.StyleDoughnut {
		pie.hole = doughnutHole
	}
	return pie
}

// Plot 从 12 点方向开始顺时针绘制扇区
func (p pieChart) Plot(c draw.Canvas, _ *gonum.Plot) {
	var total float64
	for _, value := range p.values {
		total += value
	}
	if total <= 0 {
		return
	}

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := vg.Length(math.Min(float64(c.Max.X-c.Min.X), float64(c.Max.Y-c.Min.Y)) * pieRadius)

	start := math.Pi / 2
	for i, value := range p.values {
		if value <= 0 {
			continue
		}

		sweep := value / total * 2 * math.Pi
		steps := int(math.Max(2, math.Ceil(sweep/(2*math.Pi)*pieSegments)))

		points := []vg.Point{center}
		for step := 0; step <= steps; step++ {
			angle := start - sweep*float64(step)/float64(steps)
			points = append(points, arc(center, radius, angle))
		}
		c.FillPolygon(p.colors[i], points)

		start -= sweep
	}

	if p.hole > 0 {
		inner := make([]vg.Point, 0, pieSegments)
		for step := 0; step < pieSegments; step++ {
			angle := 2 * math.Pi * float64(step) / pieSegments
			inner = append(inner, arc(center, radius*vg.Length(p.hole), angle))
		}
		c.FillPolygon(color.White, inner)
	}
}

func arc(center vg.Point, radius vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + radius*vg.Length(math.Cos(angle)),
		Y: center.Y + radius*vg.Length(math.Sin(angle)),
	}
}
