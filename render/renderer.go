package render

import (
	"errors"
	"image/color"
	"io"
	"strings"
	"sync"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/service"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch

	imageFormat   = "png"
	doughnutHole  = 0.5
	barWidth      = 20
	lineWidth     = 2
	glyphRadius   = 3
	dashLength    = 5
	gridLineAlpha = 26 // 0.1
)

var ErrChartDestroyed = errors.New("chart already destroyed")

// Renderer 使用 gonum/plot 绘制图表描述
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// Option 配置 Renderer
type Option func(*Renderer)

// WithSize 设置导出图片的尺寸
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// NewRenderer 创建一个 gonum/plot 渲染器
func NewRenderer(options ...Option) *Renderer {
	renderer := &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, option := range options {
		option(renderer)
	}
	return renderer
}

// Render draws the descriptor into a new gonum plot.
func (r *Renderer) Render(descriptor plot.Descriptor) (service.Chart, error) {
	p := gonum.New()
	p.BackgroundColor = color.White
	p.Title.Text = descriptor.Title
	p.Legend.Top = true

	if descriptor.XAxis == nil || descriptor.YAxis == nil {
		p.HideAxes()
	} else {
		p.X.Label.Text = descriptor.XAxis.Label
		p.Y.Label.Text = descriptor.YAxis.Label
		addGrid(p, descriptor.XAxis.Grid, descriptor.YAxis.Grid)
	}

	for _, series := range descriptor.Series {
		if err := addSeries(p, series); err != nil {
			return nil, err
		}
	}

	for _, text := range descriptor.Legend {
		p.Legend.Add(text)
	}

	if annotation := descriptor.Annotation; annotation != nil {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: annotation.Anchor.X, Y: annotation.Anchor.Y}},
			Labels: []string{strings.Join(annotation.Lines, "\n")},
		})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	return &chart{
		plot:       p,
		descriptor: descriptor,
		width:      r.width,
		height:     r.height,
	}, nil
}

func addGrid(p *gonum.Plot, vertical, horizontal bool) {
	if !vertical && !horizontal {
		return
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.NRGBA{A: gridLineAlpha}
	grid.Horizontal.Color = color.NRGBA{A: gridLineAlpha}
	if !vertical {
		grid.Vertical.Color = nil
	}
	if !horizontal {
		grid.Horizontal.Color = nil
	}
	p.Add(grid)
}

func addSeries(p *gonum.Plot, series plot.Series) error {
	switch series.Style {
	case plot.StyleScatter:
		xys, labels := coordinates(series.Points)
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = series.Color
		scatter.GlyphStyle.Radius = vg.Points(glyphRadius)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(series.Name, scatter)
		if labels != nil {
			p.NominalX(labels...)
		}

	case plot.StyleLine:
		xys, labels := coordinates(series.Points)
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = series.Color
		line.LineStyle.Width = vg.Points(lineWidth)
		if series.Dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(dashLength), vg.Points(dashLength)}
		}
		p.Add(line)
		p.Legend.Add(series.Name, line)
		if labels != nil {
			p.NominalX(labels...)
		}

	case plot.StyleBar:
		values := make(plotter.Values, len(series.Points))
		labels := make([]string, len(series.Points))
		for i, point := range series.Points {
			values[i], _ = point.Y.Float()
			labels[i] = point.X.String()
		}
		bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
		if err != nil {
			return err
		}
		bars.Color = series.Color
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.Legend.Add(series.Name, bars)
		p.NominalX(labels...)

	case plot.StylePie, plot.StyleDoughnut:
		pie := newPieChart(series)
		p.Add(pie)
		for i, point := range series.Points {
			p.Legend.Add(point.X.String(), swatch(pie.colors[i]))
		}

	default:
		log.Warnf("[RENDER] unsupported series style %q", series.Style)
	}

	return nil
}

// coordinates 转换为绘图坐标；X 为文本时使用序号并返回类别标签，Y 为文本的点被跳过
func coordinates(points []plot.Point) (plotter.XYs, []string) {
	xys := make(plotter.XYs, 0, len(points))
	nominal := false

	for i, point := range points {
		y, ok := point.Y.Float()
		if !ok {
			continue
		}

		x, ok := point.X.Float()
		if !ok {
			x = float64(i)
			nominal = true
		}

		xys = append(xys, plotter.XY{X: x, Y: y})
	}

	if !nominal {
		return xys, nil
	}

	// tick positions follow the input index
	labels := make([]string, len(points))
	for i, point := range points {
		labels[i] = point.X.String()
	}
	return xys, labels
}

type chart struct {
	mu         sync.Mutex
	plot       *gonum.Plot
	descriptor plot.Descriptor
	width      vg.Length
	height     vg.Length
}

func (c *chart) Descriptor() plot.Descriptor {
	return c.descriptor
}

// WriteTo 将图表编码为 PNG
func (c *chart) WriteTo(w io.Writer) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.plot == nil {
		return 0, ErrChartDestroyed
	}

	writer, err := c.plot.WriterTo(c.width, c.height, imageFormat)
	if err != nil {
		return 0, err
	}
	return writer.WriteTo(w)
}

func (c *chart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plot = nil
}

// swatch 图例中的纯色方块
type swatch color.NRGBA

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(color.NRGBA(s), []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}
