package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/testdata/mocks"
)

func TestCanvas_Replace(t *testing.T) {
	renderer := mocks.NewRenderer(t)
	first := mocks.NewChart(t)
	second := mocks.NewChart(t)

	barDescriptor := plot.Descriptor{Kind: model.KindBar}
	lineDescriptor := plot.Descriptor{Kind: model.KindLine}

	destroyed := false
	renderer.On("Render", barDescriptor).Return(first, nil).Once()
	renderer.On("Render", lineDescriptor).Run(func(mock.Arguments) {
		assert.True(t, destroyed, "previous chart must be destroyed before rendering")
	}).Return(second, nil).Once()

	canvas := NewCanvas(renderer)
	assert.Nil(t, canvas.Current())

	chart, err := canvas.Replace(barDescriptor)
	require.NoError(t, err)
	assert.Equal(t, first, chart)

	first.On("Destroy").Run(func(mock.Arguments) { destroyed = true }).Once()

	chart, err = canvas.Replace(lineDescriptor)
	require.NoError(t, err)
	assert.Equal(t, second, chart)
	assert.Equal(t, second, canvas.Current())

	second.On("Destroy").Once()
	canvas.Release()
	assert.Nil(t, canvas.Current())

	// releasing an empty canvas is a no-op
	canvas.Release()
}

func TestCanvas_RenderError(t *testing.T) {
	renderer := mocks.NewRenderer(t)
	first := mocks.NewChart(t)
	failure := errors.New("boom")

	renderer.On("Render", plot.Descriptor{Kind: model.KindBar}).Return(first, nil).Once()
	renderer.On("Render", plot.Descriptor{Kind: model.KindPie}).Return(nil, failure).Once()
	first.On("Destroy").Once()

	canvas := NewCanvas(renderer)
	_, err := canvas.Replace(plot.Descriptor{Kind: model.KindBar})
	require.NoError(t, err)

	_, err = canvas.Replace(plot.Descriptor{Kind: model.KindPie})
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, canvas.Current())
}

func TestCanvas_Export(t *testing.T) {
	renderer := mocks.NewRenderer(t)
	chart := mocks.NewChart(t)
	canvas := NewCanvas(renderer)

	var buffer bytes.Buffer
	assert.ErrorIs(t, canvas.Export(&buffer), ErrNoChart)

	renderer.On("Render", plot.Descriptor{}).Return(chart, nil).Once()
	chart.On("WriteTo", &buffer).Return(int64(4), nil).Once()

	_, err := canvas.Replace(plot.Descriptor{})
	require.NoError(t, err)
	assert.NoError(t, canvas.Export(&buffer))

	failure := errors.New("disk full")
	chart.On("WriteTo", &buffer).Return(int64(0), failure).Once()
	assert.ErrorIs(t, canvas.Export(&buffer), failure)
}
