package plot

import (
	"github.com/rodrigo-brito/ninjachart/model"
)

// annotationInset 标注距离数据范围边缘的比例
const annotationInset = 0.1

// Anchor 计算标注在数据坐标中的建议位置：距离所选角落对应的极值 10% 的范围
// Anchor returns a point inside the data range of xs and ys, inset by 10% of
// each range from the extremes named by corner.
func Anchor(corner model.Corner, xs, ys model.Series[float64]) model.XY {
	xRange := model.Range(xs)
	yRange := model.Range(ys)

	anchor := model.XY{
		X: xs.Max() - xRange*annotationInset,
		Y: ys.Min() + yRange*annotationInset,
	}

	if corner.Left() {
		anchor.X = xs.Min() + xRange*annotationInset
	}

	if corner.Top() {
		anchor.Y = ys.Max() - yRange*annotationInset
	}

	return anchor
}
