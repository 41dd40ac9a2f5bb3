package plot

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/regression"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

const (
	defaultXLabel = "X"
	defaultYLabel = "Y"
)

var ErrMissingFit = errors.New("scatter-fit chart requires a fit result")

var (
	pointColor   = color.NRGBA{A: 255}                        // 黑色点
	seriesColor  = color.NRGBA{R: 54, G: 162, B: 235, A: 255} // 柱状图和折线图
	fitLineColor = color.NRGBA{R: 255, A: 255}                // 红色拟合线
)

// MetricStyle 系列的绘制样式
type MetricStyle string

const (
	StyleBar      MetricStyle = "bar"
	StyleLine     MetricStyle = "line"
	StyleScatter  MetricStyle = "scatter"
	StylePie      MetricStyle = "pie"
	StyleDoughnut MetricStyle = "doughnut"
)

// Point 系列中的一个点；饼图中 X 为类别标签
type Point struct {
	X model.Value
	Y model.Value
}

// Series 一个待绘制的数据系列
type Series struct {
	Name    string
	Style   MetricStyle
	Color   color.NRGBA
	Colors  []color.NRGBA // 饼图每个扇区的颜色
	Dashed  bool
	Overlay bool
	Points  []Point
}

// Axis 坐标轴配置
type Axis struct {
	Label string
	Grid  bool
}

// Annotation 拟合信息标注，Anchor 为数据坐标中的建议位置
type Annotation struct {
	Corner model.Corner
	Anchor model.XY
	Lines  []string
}

// Descriptor describes one chart independently of the drawing engine.
// The primary series comes first, overlays follow. Axes are nil for pie
// and doughnut charts.
type Descriptor struct {
	Kind       model.ChartKind
	Title      string
	Series     []Series
	XAxis      *Axis
	YAxis      *Axis
	Legend     []string
	Annotation *Annotation
}

// Builder 根据校验后的数据构建图表描述
type Builder struct {
	mu         sync.Mutex
	indicators []Indicator
}

// Option 配置 Builder
type Option func(*Builder)

// WithIndicators 为折线图和散点图添加趋势叠加指标
func WithIndicators(indicators ...Indicator) Option {
	return func(builder *Builder) {
		builder.indicators = append(builder.indicators, indicators...)
	}
}

// NewBuilder 创建一个 Builder
func NewBuilder(options ...Option) *Builder {
	builder := &Builder{}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// Build assembles the descriptor of a validated data set. fit is required for
// scatter-fit charts and ignored otherwise.
func (b *Builder) Build(ds model.DataSet, fit *model.FitResult, style model.StyleOptions) (Descriptor, error) {
	descriptor := Descriptor{
		Kind:  ds.Kind,
		Title: style.Title,
	}

	if ds.Kind.Categorical() {
		descriptor.Series = []Series{categorySeries(ds)}
		return descriptor, nil
	}

	descriptor.XAxis = &Axis{Label: orDefault(style.XLabel, defaultXLabel), Grid: style.Grid}
	descriptor.YAxis = &Axis{Label: orDefault(style.YLabel, defaultYLabel), Grid: style.Grid}
	descriptor.Series = []Series{primarySeries(ds)}

	if ds.Kind.Fit() {
		if fit == nil {
			return Descriptor{}, ErrMissingFit
		}

		xs, ys, ok := ds.Numeric()
		if !ok {
			return Descriptor{}, fmt.Errorf("build %s: non numeric data", ds.Kind)
		}

		equation := regression.FormatEquation(*fit)
		rSquared := regression.FormatRSquared(*fit)
		segment := regression.Segment(*fit, xs)

		descriptor.Series = append(descriptor.Series, Series{
			Name:    "Fit line",
			Style:   StyleLine,
			Color:   fitLineColor,
			Dashed:  style.FitLine == model.LineDashed,
			Overlay: true,
			Points: []Point{
				{X: model.Number(segment[0].X), Y: model.Number(segment[0].Y)},
				{X: model.Number(segment[1].X), Y: model.Number(segment[1].Y)},
			},
		})
		descriptor.Legend = []string{equation, rSquared}
		descriptor.Annotation = &Annotation{
			Corner: style.Corner,
			Anchor: Anchor(style.Corner, xs, ys),
			Lines:  []string{rSquared, equation},
		}
	}

	descriptor.Series = append(descriptor.Series, b.overlays(ds)...)
	return descriptor, nil
}

// overlays 计算趋势叠加指标，仅适用于全部为数值的折线图和散点图
func (b *Builder) overlays(ds model.DataSet) []Series {
	if len(b.indicators) == 0 || ds.Kind == model.KindBar {
		return nil
	}

	if _, _, ok := ds.Numeric(); !ok {
		log.Debugf("[PLOT] skipping indicators for %s: non numeric data", ds.Kind)
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	points := ds.Points()
	series := make([]Series, 0)
	for _, indicator := range b.indicators {
		if len(points) < indicator.Warmup() {
			log.Debugf("[PLOT] skipping %s: %d points, warmup %d", indicator.Name(), len(points), indicator.Warmup())
			continue
		}

		indicator.Load(points)
		for _, metric := range indicator.Metrics() {
			series = append(series, metric.series(indicator.Name()))
		}
	}
	return series
}

func primarySeries(ds model.DataSet) Series {
	series := Series{
		Name:   "Data points",
		Points: make([]Point, 0, len(ds.Y)),
	}

	switch ds.Kind {
	case model.KindBar:
		series.Style, series.Color = StyleBar, seriesColor
	case model.KindLine:
		series.Style, series.Color = StyleLine, seriesColor
	default:
		series.Style, series.Color = StyleScatter, pointColor
	}

	for i := 0; i < min(len(ds.X), len(ds.Y)); i++ {
		series.Points = append(series.Points, Point{X: ds.X[i], Y: ds.Y[i]})
	}
	return series
}

func categorySeries(ds model.DataSet) Series {
	style := StylePie
	if ds.Kind == model.KindDoughnut {
		style = StyleDoughnut
	}

	series := Series{
		Name:   "Data",
		Style:  style,
		Colors: Palette(len(ds.Y)),
		Points: make([]Point, 0, len(ds.Y)),
	}

	for i, value := range ds.Y {
		label := model.Text(fmt.Sprintf("#%d", i+1))
		if i < len(ds.X) {
			label = model.Text(ds.X[i].String())
		}
		series.Points = append(series.Points, Point{X: label, Y: value})
	}
	return series
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
