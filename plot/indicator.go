package plot

import (
	"fmt"
	"image/color"

	"github.com/rodrigo-brito/ninjachart/model"
)

// Indicator 叠加在数值序列上的趋势指标
type Indicator interface {
	Name() string
	// Warmup is the minimum number of points needed by Load.
	Warmup() int
	// Load computes the indicator over the points, in input order.
	Load(points []model.XY)
	Metrics() []IndicatorMetric
}

// IndicatorMetric 指标输出的一条线
type IndicatorMetric struct {
	Name   string
	Color  color.NRGBA
	Style  MetricStyle // default: line
	Dashed bool
	Values []model.XY
}

func (m IndicatorMetric) series(indicator string) Series {
	style := m.Style
	if style == "" {
		style = StyleLine
	}

	name := indicator
	if m.Name != "" {
		name = fmt.Sprintf("%s %s", indicator, m.Name)
	}

	points := make([]Point, 0, len(m.Values))
	for _, value := range m.Values {
		points = append(points, Point{X: model.Number(value.X), Y: model.Number(value.Y)})
	}

	return Series{
		Name:    name,
		Style:   style,
		Color:   m.Color,
		Dashed:  m.Dashed,
		Overlay: true,
		Points:  points,
	}
}
