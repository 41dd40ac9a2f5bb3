package ninjachart

import (
	"fmt"
	"io"

	"github.com/rodrigo-brito/ninjachart/dataset"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/regression"
	"github.com/rodrigo-brito/ninjachart/render"
	"github.com/rodrigo-brito/ninjachart/service"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04",
	})
}

// NinjaChart 解析、校验、拟合并绘制用户输入的数据
type NinjaChart struct {
	canvas     *render.Canvas // 当前图表
	builder    *plot.Builder  // 图表描述构建器
	indicators []plot.Indicator
}

type Option func(*NinjaChart)

// New 创建 NinjaChart，renderer 负责绘制图表描述
func New(renderer service.Renderer, options ...Option) *NinjaChart {
	chart := &NinjaChart{
		canvas: render.NewCanvas(renderer),
	}

	for _, option := range options {
		option(chart)
	}

	chart.builder = plot.NewBuilder(plot.WithIndicators(chart.indicators...))
	return chart
}

// WithIndicators 在折线图和散点图上叠加趋势指标
// WithIndicators adds trend overlays to line and scatter charts
func WithIndicators(indicators ...plot.Indicator) Option {
	return func(chart *NinjaChart) {
		chart.indicators = append(chart.indicators, indicators...)
	}
}

// WithLogLevel 设置日志级别。例如: log.DebugLevel、log.InfoLevel、log.WarnLevel
// WithLogLevel sets the log level. eg: log.DebugLevel, log.InfoLevel, log.WarnLevel
func WithLogLevel(level log.Level) Option {
	return func(_ *NinjaChart) {
		log.SetLevel(level)
	}
}

// Prepare 解析并校验请求，计算拟合结果并构建图表描述，不修改画布
// Prepare runs parse, validate, fit and build for a request without touching
// the canvas.
func (n *NinjaChart) Prepare(request model.Request) (plot.Descriptor, error) {
	kind, err := model.ParseChartKind(request.Kind)
	if err != nil {
		return plot.Descriptor{}, err
	}

	style, err := request.Style()
	if err != nil {
		return plot.Descriptor{}, err
	}

	xs := dataset.Parse(request.XData)
	ys := dataset.Parse(request.YData)
	log.Debugf("[PARSE] %d x values, %d y values", len(xs), len(ys))

	ds, err := dataset.New(xs, ys, kind)
	if err != nil {
		log.WithField("kind", kind).Warn("[VALIDATE] ", err)
		return plot.Descriptor{}, err
	}

	var fit *model.FitResult
	if kind.Fit() {
		result, err := regression.Fit(ds.Points())
		if err != nil {
			log.WithField("kind", kind).Warn("[FIT] ", err)
			return plot.Descriptor{}, err
		}

		log.WithFields(log.Fields{
			"equation":  regression.FormatEquation(result),
			"r_squared": result.RSquared,
		}).Debug("[FIT] linear regression")
		fit = &result
	}

	descriptor, err := n.builder.Build(ds, fit, style)
	if err != nil {
		return plot.Descriptor{}, fmt.Errorf("build chart: %w", err)
	}
	return descriptor, nil
}

// Render 构建图表描述并替换画布上的图表；输入错误时画布保持不变
// Render prepares the request and replaces the chart on the canvas. Input errors
// leave the canvas untouched.
func (n *NinjaChart) Render(request model.Request) (plot.Descriptor, error) {
	descriptor, err := n.Prepare(request)
	if err != nil {
		return plot.Descriptor{}, err
	}

	if _, err := n.canvas.Replace(descriptor); err != nil {
		return plot.Descriptor{}, err
	}
	return descriptor, nil
}

// Current 返回当前图表，没有时返回 nil
func (n *NinjaChart) Current() service.Chart {
	return n.canvas.Current()
}

// Export 将当前图表以 PNG 格式写入 w
func (n *NinjaChart) Export(w io.Writer) error {
	return n.canvas.Export(w)
}

// Close 销毁当前图表
func (n *NinjaChart) Close() {
	n.canvas.Release()
}
