package model

import (
	"golang.org/x/exp/constraints"
)

// Series 有序的数值序列
// Series is an ordered sequence of values
type Series[T constraints.Ordered] []T

// Min returns the smallest value of the series, zero value when empty
// 返回序列中的最小值
func (s Series[T]) Min() T {
	var lowest T
	for i, v := range s {
		if i == 0 || v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Max returns the largest value of the series, zero value when empty
// 返回序列中的最大值
func (s Series[T]) Max() T {
	var highest T
	for i, v := range s {
		if i == 0 || v > highest {
			highest = v
		}
	}
	return highest
}

// Range returns max - min of a float series
// 返回序列的极差
func Range(s Series[float64]) float64 {
	return s.Max() - s.Min()
}
