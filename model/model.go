package model

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/StudioSol/set"
)

var (
	ErrUnknownChartKind = errors.New("unknown chart kind")
	ErrUnknownLineStyle = errors.New("unknown fit line style")
	ErrUnknownCorner    = errors.New("unknown annotation corner")
)

// ChartKind 图表类型
type ChartKind string

const (
	KindBar        ChartKind = "bar"
	KindLine       ChartKind = "line"
	KindPie        ChartKind = "pie"
	KindDoughnut   ChartKind = "doughnut"
	KindScatter    ChartKind = "scatter"
	KindScatterFit ChartKind = "scatter-fit"
)

var (
	chartKinds = set.NewLinkedHashSetString(
		string(KindBar),
		string(KindLine),
		string(KindPie),
		string(KindDoughnut),
		string(KindScatter),
		string(KindScatterFit),
	)
	// 饼图和环形图没有坐标轴
	categoricalKinds = set.NewLinkedHashSetString(string(KindPie), string(KindDoughnut))
)

// Kinds returns every supported chart kind in declaration order
// 按声明顺序返回所有支持的图表类型
func Kinds() []ChartKind {
	kinds := make([]ChartKind, 0, chartKinds.Length())
	for kind := range chartKinds.Iter() {
		kinds = append(kinds, ChartKind(kind))
	}
	return kinds
}

// ParseChartKind 将用户输入转换为图表类型
func ParseChartKind(value string) (ChartKind, error) {
	if !chartKinds.InArray(value) {
		return "", fmt.Errorf("%w: %q", ErrUnknownChartKind, value)
	}
	return ChartKind(value), nil
}

// Categorical returns true for kinds drawn without axes (pie, doughnut)
// 饼图和环形图返回 true
func (k ChartKind) Categorical() bool {
	return categoricalKinds.InArray(string(k))
}

// Fit returns true when the kind carries a regression overlay
func (k ChartKind) Fit() bool {
	return k == KindScatterFit
}

func (k ChartKind) String() string {
	return string(k)
}

// Value 是输入中的一个值：能解析为数字时为数值，否则保留为文本标签
// Value is a parsed token: a number when it has numeric form, a label otherwise
type Value struct {
	text    string
	number  float64
	numeric bool
}

// Number 创建数值
func Number(number float64) Value {
	return Value{
		text:    strconv.FormatFloat(number, 'f', -1, 64),
		number:  number,
		numeric: true,
	}
}

// Text 创建文本标签
func Text(text string) Value {
	return Value{text: text}
}

// NumberFromToken keeps the original token text next to the parsed number
func NumberFromToken(token string, number float64) Value {
	return Value{text: token, number: number, numeric: true}
}

// Float 返回数值以及该值是否为数值
func (v Value) Float() (float64, bool) {
	return v.number, v.numeric
}

// IsNumber 判断该值是否为数值
func (v Value) IsNumber() bool {
	return v.numeric
}

// String returns the token as typed by the user
func (v Value) String() string {
	return v.text
}

// XY 二维坐标点
type XY struct {
	X float64
	Y float64
}

// DataSet 一次渲染请求的数据：X 序列、Y 序列和图表类型
type DataSet struct {
	X    []Value
	Y    []Value
	Kind ChartKind
}

// Numeric returns both series as floats, ok is false when any value is a label
// 当所有值均为数值时返回数值序列
func (d DataSet) Numeric() (xs, ys Series[float64], ok bool) {
	xs, ok = floats(d.X)
	if !ok {
		return nil, nil, false
	}
	ys, ok = floats(d.Y)
	if !ok {
		return nil, nil, false
	}
	return xs, ys, true
}

// Points 返回成对的数值坐标点；非数值对被跳过
// Points returns the (x, y) pairs where both coordinates are numeric
func (d DataSet) Points() []XY {
	size := len(d.X)
	if len(d.Y) < size {
		size = len(d.Y)
	}

	points := make([]XY, 0, size)
	for i := 0; i < size; i++ {
		x, okX := d.X[i].Float()
		y, okY := d.Y[i].Float()
		if okX && okY {
			points = append(points, XY{X: x, Y: y})
		}
	}
	return points
}

func floats(values []Value) (Series[float64], bool) {
	series := make(Series[float64], 0, len(values))
	for _, value := range values {
		number, ok := value.Float()
		if !ok {
			return nil, false
		}
		series = append(series, number)
	}
	return series, true
}

// FitResult 最小二乘拟合结果
// FitResult is an ordinary least-squares fit of y on x
type FitResult struct {
	Slope     float64 // 斜率
	Intercept float64 // 截距
	RSquared  float64 // 决定系数，范围 [0, 1]
}

// Predict 返回拟合直线在 x 处的值
func (f FitResult) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// LineStyle 拟合线样式
type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
)

// ParseLineStyle returns LineDashed for blank input
func ParseLineStyle(value string) (LineStyle, error) {
	switch LineStyle(value) {
	case "":
		return LineDashed, nil
	case LineSolid, LineDashed:
		return LineStyle(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLineStyle, value)
}

// Corner 标注所在的角落
type Corner string

const (
	TopLeft     Corner = "top-left"
	TopRight    Corner = "top-right"
	BottomLeft  Corner = "bottom-left"
	BottomRight Corner = "bottom-right"
)

// ParseCorner returns TopLeft for blank input
func ParseCorner(value string) (Corner, error) {
	switch Corner(value) {
	case "":
		return TopLeft, nil
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return Corner(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCorner, value)
}

// Top 标注是否位于上方
func (c Corner) Top() bool {
	return c == TopLeft || c == TopRight
}

// Left 标注是否位于左侧
func (c Corner) Left() bool {
	return c == TopLeft || c == BottomLeft
}

// StyleOptions 图表样式配置
type StyleOptions struct {
	Title   string    // 标题
	XLabel  string    // X 轴标签
	YLabel  string    // Y 轴标签
	Grid    bool      // 是否显示网格线
	FitLine LineStyle // 拟合线样式
	Corner  Corner    // 拟合信息标注位置
}

// Request 用户输入的原始字段
// Request carries the raw fields of one render request
type Request struct {
	XData   string
	YData   string
	Kind    string
	Title   string
	XLabel  string
	YLabel  string
	Grid    bool
	FitLine string
	Corner  string
}

// Style 将请求中的样式字段解析为 StyleOptions
func (r Request) Style() (StyleOptions, error) {
	fitLine, err := ParseLineStyle(r.FitLine)
	if err != nil {
		return StyleOptions{}, err
	}

	corner, err := ParseCorner(r.Corner)
	if err != nil {
		return StyleOptions{}, err
	}

	return StyleOptions{
		Title:   r.Title,
		XLabel:  r.XLabel,
		YLabel:  r.YLabel,
		Grid:    r.Grid,
		FitLine: fitLine,
		Corner:  corner,
	}, nil
}
