//go:generate go run github.com/vektra/mockery/v2 --all --output=../testdata/mocks

package service

import (
	"io"

	"github.com/rodrigo-brito/ninjachart/plot"
)

// Renderer 将图表描述绘制为一个图表实例
type Renderer interface {
	Render(descriptor plot.Descriptor) (Chart, error)
}

// Chart 一个已绘制的图表实例，替换前必须先销毁
type Chart interface {
	Descriptor() plot.Descriptor
	// WriteTo encodes the chart surface as a PNG image.
	WriteTo(w io.Writer) (int64, error)
	Destroy()
}
