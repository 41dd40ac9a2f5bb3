package indicator

import (
	"fmt"
	"image/color"

	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
)

// BollingerBands 返回一个布林带指标对象，用于在折线图上叠加布林带
func BollingerBands(period int, stdDeviation float64, upDnBandColor, midBandColor color.NRGBA) plot.Indicator {
	return &bollingerBands{
		Period:        period,
		StdDeviation:  stdDeviation,
		UpDnBandColor: upDnBandColor,
		MidBandColor:  midBandColor,
	}
}

// bollingerBands 包含了计算布林带所需的参数和计算结果
type bollingerBands struct {
	Period        int
	StdDeviation  float64
	UpDnBandColor color.NRGBA
	MidBandColor  color.NRGBA
	UpperBand     []model.XY
	MiddleBand    []model.XY
	LowerBand     []model.XY
}

// Warmup 返回计算指标所需的最少数据点
func (bb bollingerBands) Warmup() int {
	return bb.Period
}

// Name 返回指标的名称，格式为"BB(周期, 标准差)"
func (bb bollingerBands) Name() string {
	return fmt.Sprintf("BB(%d, %.2f)", bb.Period, bb.StdDeviation)
}

// Load 根据数据点的 Y 值计算布林带的上轨、中轨和下轨
func (bb *bollingerBands) Load(points []model.XY) {
	bb.UpperBand, bb.MiddleBand, bb.LowerBand = nil, nil, nil
	if len(points) < bb.Period {
		return
	}

	upper, mid, lower := talib.BBands(ys(points), bb.Period, bb.StdDeviation, bb.StdDeviation, talib.SMA)

	// 前 Period-1 个值用于预热
	start := bb.Period - 1
	bb.UpperBand = zip(points[start:], upper[start:])
	bb.MiddleBand = zip(points[start:], mid[start:])
	bb.LowerBand = zip(points[start:], lower[start:])
}

// Metrics 返回上轨、中轨和下轨三条线
func (bb bollingerBands) Metrics() []plot.IndicatorMetric {
	return []plot.IndicatorMetric{
		{
			Name:   "upper",
			Style:  plot.StyleLine,
			Color:  bb.UpDnBandColor, // 上下轨相同颜色
			Dashed: true,
			Values: bb.UpperBand,
		},
		{
			Name:   "middle",
			Style:  plot.StyleLine,
			Color:  bb.MidBandColor,
			Values: bb.MiddleBand,
		},
		{
			Name:   "lower",
			Style:  plot.StyleLine,
			Color:  bb.UpDnBandColor,
			Dashed: true,
			Values: bb.LowerBand,
		},
	}
}
