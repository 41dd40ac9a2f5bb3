package indicator

import (
	"fmt"
	"image/color"

	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
)

// SMA 返回简单移动平均线指标
func SMA(period int, color color.NRGBA) plot.Indicator {
	return &movingAverage{
		Period: period,
		Color:  color,
	}
}

type movingAverage struct {
	Period int         // 周期长度
	Color  color.NRGBA // 图表中的颜色
	Values []model.XY  // 移动平均值，X 与输入点对齐
}

func (m movingAverage) Warmup() int {
	return m.Period
}

func (m movingAverage) Name() string {
	return fmt.Sprintf("SMA(%d)", m.Period)
}

// Load 载入数据并计算移动平均
func (m *movingAverage) Load(points []model.XY) {
	m.Values = nil
	if len(points) < m.Period {
		return
	}

	start := m.Period - 1
	m.Values = zip(points[start:], talib.Sma(ys(points), m.Period)[start:])
}

func (m movingAverage) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Style:  plot.StyleLine,
			Color:  m.Color,
			Values: m.Values,
		},
	}
}

func ys(points []model.XY) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Y
	}
	return values
}

// zip 将 X 坐标与指标值配对
func zip(points []model.XY, values []float64) []model.XY {
	result := make([]model.XY, len(points))
	for i, p := range points {
		result[i] = model.XY{X: p.X, Y: values[i]}
	}
	return result
}
