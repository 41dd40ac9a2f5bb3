package dataset

import (
	"errors"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/ninjachart/model"
)

// MinFitPoints 拟合直线所需的最少数据点
const MinFitPoints = 2

var (
	ErrEmptyInput            = errors.New("both X and Y data are required")
	ErrLengthMismatch        = errors.New("X and Y data must have the same number of points")
	ErrInvalidPieValue       = errors.New("pie and doughnut data must be non-negative numbers")
	ErrNonNumericFitData     = errors.New("fit line data must be numeric")
	ErrInsufficientFitPoints = errors.New("fit line needs at least 2 data points")
)

// Validate 按图表类型校验数据，返回第一个失败的规则
// Validate checks the data shape rules of kind in order and returns the first
// violation. It has no side effects.
func Validate(xs, ys []model.Value, kind model.ChartKind) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrEmptyInput
	}

	if !kind.Categorical() && len(xs) != len(ys) {
		return ErrLengthMismatch
	}

	if kind.Categorical() && !lo.EveryBy(ys, nonNegativeNumber) {
		return ErrInvalidPieValue
	}

	if kind.Fit() {
		if !lo.EveryBy(xs, model.Value.IsNumber) || !lo.EveryBy(ys, model.Value.IsNumber) {
			return ErrNonNumericFitData
		}
		if len(xs) < MinFitPoints {
			return ErrInsufficientFitPoints
		}
	}

	return nil
}

// New 校验并打包数据集
func New(xs, ys []model.Value, kind model.ChartKind) (model.DataSet, error) {
	if err := Validate(xs, ys, kind); err != nil {
		return model.DataSet{}, err
	}

	return model.DataSet{X: xs, Y: ys, Kind: kind}, nil
}

func nonNegativeNumber(value model.Value) bool {
	number, ok := value.Float()
	return ok && number >= 0
}
