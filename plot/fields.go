package plot

import "github.com/rodrigo-brito/ninjachart/model"

// FieldVisibility lists which optional input fields are meaningful for a chart kind.
type FieldVisibility struct {
	AxisLabels       bool
	FitInfo          bool
	FitLineStyle     bool
	AnnotationCorner bool
}

// Fields 饼图和环形图不需要轴标签；只有拟合直线散点图需要拟合信息和位置选择
func Fields(kind model.ChartKind) FieldVisibility {
	return FieldVisibility{
		AxisLabels:       !kind.Categorical(),
		FitInfo:          kind.Fit(),
		FitLineStyle:     kind.Fit(),
		AnnotationCorner: kind.Fit(),
	}
}
