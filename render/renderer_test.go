package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/rodrigo-brito/ninjachart/dataset"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/regression"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func descriptor(t *testing.T, xs, ys string, kind model.ChartKind) plot.Descriptor {
	t.Helper()

	ds, err := dataset.New(dataset.Parse(xs), dataset.Parse(ys), kind)
	require.NoError(t, err)

	var fit *model.FitResult
	if kind.Fit() {
		result, err := regression.Fit(ds.Points())
		require.NoError(t, err)
		fit = &result
	}

	style := model.StyleOptions{Title: "Chart", Grid: true, FitLine: model.LineDashed, Corner: model.TopLeft}
	d, err := plot.NewBuilder().Build(ds, fit, style)
	require.NoError(t, err)
	return d
}

func TestRenderer_Render(t *testing.T) {
	tt := []struct {
		name string
		xs   string
		ys   string
		kind model.ChartKind
	}{
		{"bar", "Mon,Tue,Wed", "3,a,5", model.KindBar},
		{"line numeric", "1,2,3", "3,4,5", model.KindLine},
		{"line labels", "a,b,c", "3,4,5", model.KindLine},
		{"pie", "a,b,c", "3,0,5", model.KindPie},
		{"doughnut", "a", "3,4", model.KindDoughnut},
		{"scatter", "1,2,3", "2,4,5", model.KindScatter},
		{"scatter fit", "0,1,2,3", "1,3,5,7", model.KindScatterFit},
	}

	renderer := NewRenderer(WithSize(4*vg.Inch, 3*vg.Inch))
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			d := descriptor(t, tc.xs, tc.ys, tc.kind)
			chart, err := renderer.Render(d)
			require.NoError(t, err)
			assert.Equal(t, d, chart.Descriptor())

			var buffer bytes.Buffer
			_, err = chart.WriteTo(&buffer)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buffer.Bytes(), pngSignature))

			chart.Destroy()
			_, err = chart.WriteTo(&buffer)
			assert.ErrorIs(t, err, ErrChartDestroyed)
		})
	}
}

func TestCoordinates(t *testing.T) {
	xys, labels := coordinates([]plot.Point{
		{X: model.Number(1), Y: model.Number(2)},
		{X: model.Number(3), Y: model.Text("n/a")},
	})
	assert.Nil(t, labels)
	require.Len(t, xys, 1)
	assert.Equal(t, 1.0, xys[0].X)

	xys, labels = coordinates([]plot.Point{
		{X: model.Text("a"), Y: model.Number(2)},
		{X: model.Text("b"), Y: model.Number(4)},
	})
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 1.0, xys[1].X)
}

func TestNewPieChart(t *testing.T) {
	d := descriptor(t, "a,b", "1,2", model.KindDoughnut)
	pie := newPieChart(d.Series[0])
	assert.Equal(t, []float64{1, 2}, pie.values)
	assert.Equal(t, doughnutHole, pie.hole)
	assert.Equal(t, d.Series[0].Colors, pie.colors)
}
