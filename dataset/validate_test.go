package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/model"
)

func numbers(values ...float64) []model.Value {
	series := make([]model.Value, 0, len(values))
	for _, v := range values {
		series = append(series, model.Number(v))
	}
	return series
}

func TestValidate(t *testing.T) {
	t.Run("empty input for every kind", func(t *testing.T) {
		for _, kind := range model.Kinds() {
			assert.ErrorIs(t, Validate(nil, numbers(1), kind), ErrEmptyInput, kind)
			assert.ErrorIs(t, Validate(numbers(1), []model.Value{}, kind), ErrEmptyInput, kind)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		for _, kind := range []model.ChartKind{model.KindBar, model.KindLine, model.KindScatter, model.KindScatterFit} {
			assert.ErrorIs(t, Validate(numbers(1, 2), numbers(1), kind), ErrLengthMismatch, kind)
			assert.NoError(t, Validate(numbers(1, 2), numbers(3, 4), kind), kind)
		}
	})

	t.Run("categorical x with matching length", func(t *testing.T) {
		xs := Parse("a,b,c")
		assert.NoError(t, Validate(xs, Parse("a,2,3"), model.KindBar))
		assert.NoError(t, Validate(xs, numbers(1, 2, 3), model.KindLine))
	})

	t.Run("pie", func(t *testing.T) {
		for _, kind := range []model.ChartKind{model.KindPie, model.KindDoughnut} {
			assert.ErrorIs(t, Validate(Parse("a,b"), numbers(3, -1), kind), ErrInvalidPieValue)
			assert.ErrorIs(t, Validate(Parse("a,b"), Parse("3,x"), kind), ErrInvalidPieValue)
			assert.NoError(t, Validate(Parse("a,b"), numbers(3, 1), kind))
			assert.NoError(t, Validate(Parse("a"), numbers(3, 1, 0), kind))
			assert.NoError(t, Validate(numbers(7, 8, 9, 10), numbers(3, 1), kind))
		}
	})

	t.Run("scatter fit", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Parse("a,2"), numbers(1, 2), model.KindScatterFit), ErrNonNumericFitData)
		assert.ErrorIs(t, Validate(numbers(1, 2), Parse("1,b"), model.KindScatterFit), ErrNonNumericFitData)
		assert.ErrorIs(t, Validate(numbers(1), numbers(1), model.KindScatterFit), ErrInsufficientFitPoints)
		assert.NoError(t, Validate(numbers(1, 2), numbers(1, 2), model.KindScatterFit))
	})

	t.Run("first failure wins", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Parse("a"), Parse("b,c"), model.KindScatterFit), ErrLengthMismatch)
		assert.ErrorIs(t, Validate(Parse("a"), Parse("b"), model.KindScatterFit), ErrNonNumericFitData)
	})
}

func TestNew(t *testing.T) {
	ds, err := New(numbers(0, 1), numbers(1, 3), model.KindScatterFit)
	require.NoError(t, err)
	assert.Equal(t, model.KindScatterFit, ds.Kind)
	assert.Equal(t, []model.XY{{X: 0, Y: 1}, {X: 1, Y: 3}}, ds.Points())

	_, err = New(nil, nil, model.KindBar)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
