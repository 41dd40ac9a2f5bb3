// Package regression fits a straight line to scatter points by ordinary least
// squares and formats the fitted equation for display.
package regression

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rodrigo-brito/ninjachart/dataset"
	"github.com/rodrigo-brito/ninjachart/model"
)

// Precision is the number of decimals used for the equation and R² text.
const Precision = 5

var ErrDegenerateFitInput = errors.New("all X values are identical, the fit line is vertical")

// Fit 对数据点进行最小二乘线性拟合
// Fit computes slope, intercept and R² of the least-squares line through points.
// The line is fitted on mean-centered data, so large x offsets such as unix
// timestamps keep full precision.
func Fit(points []model.XY) (model.FitResult, error) {
	if len(points) < dataset.MinFitPoints {
		return model.FitResult{}, dataset.ErrInsufficientFitPoints
	}

	xs, ys := split(points)
	if floats.Max(xs) == floats.Min(xs) {
		return model.FitResult{}, ErrDegenerateFitInput
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) || math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return model.FitResult{}, ErrDegenerateFitInput
	}

	return model.FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared(xs, ys, slope, intercept),
	}, nil
}

// rSquared 决定系数，所有 Y 相同时为 1
func rSquared(xs, ys []float64, slope, intercept float64) float64 {
	mean := stat.Mean(ys, nil)

	var ssTot float64
	for _, y := range ys {
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		return 1
	}

	// stat.RSquared uses y = alpha + beta*x
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	return math.Max(0, math.Min(1, r2))
}

// Residuals 返回每个点的残差 y - predict(x)
func Residuals(fit model.FitResult, points []model.XY) []float64 {
	residuals := make([]float64, 0, len(points))
	for _, p := range points {
		residuals = append(residuals, p.Y-fit.Predict(p.X))
	}
	return residuals
}

// Segment 返回覆盖 [minX, maxX] 的拟合线段的两个端点
// Segment returns the two endpoints of the fit line spanning the x range.
func Segment(fit model.FitResult, xs model.Series[float64]) [2]model.XY {
	minX, maxX := xs.Min(), xs.Max()
	return [2]model.XY{
		{X: minX, Y: fit.Predict(minX)},
		{X: maxX, Y: fit.Predict(maxX)},
	}
}

// FormatEquation 格式化拟合方程，例如 "y = 0.50000x + 1.00000"
// The intercept sign follows the rounded value, so -0.0000001 prints as "+ 0.00000".
func FormatEquation(fit model.FitResult) string {
	intercept := fixed(math.Abs(fit.Intercept))
	sign := "+"
	if fit.Intercept < 0 && !zero(intercept) {
		sign = "-"
	}
	return fmt.Sprintf("y = %sx %s %s", fixed(fit.Slope), sign, intercept)
}

// FormatRSquared 格式化决定系数，例如 "R² = 0.99999"
func FormatRSquared(fit model.FitResult) string {
	return fmt.Sprintf("R² = %.*f", Precision, fit.RSquared)
}

// fixed 按 Precision 格式化，负零显示为 0
func fixed(value float64) string {
	text := fmt.Sprintf("%.*f", Precision, value)
	if zero(text) {
		return strings.TrimPrefix(text, "-")
	}
	return text
}

func zero(text string) bool {
	return strings.Trim(text, "-0.") == ""
}

func split(points []model.XY) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
