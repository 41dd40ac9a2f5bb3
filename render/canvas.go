package render

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/service"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

// ExportName 导出图片的默认文件名
const ExportName = "chart.png"

var ErrNoChart = errors.New("no chart rendered")

// Canvas 持有当前图表，同一时间最多只有一个存活的图表实例
// Canvas owns the current chart. Replace destroys the previous chart before the
// new one is rendered, so at most one chart is alive at any time.
type Canvas struct {
	mu       sync.Mutex
	renderer service.Renderer
	current  service.Chart
}

// NewCanvas 创建一个空画布
func NewCanvas(renderer service.Renderer) *Canvas {
	return &Canvas{renderer: renderer}
}

// Replace 销毁当前图表，然后绘制并安装新图表；绘制失败时画布为空
func (c *Canvas) Replace(descriptor plot.Descriptor) (service.Chart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.release()

	chart, err := c.renderer.Render(descriptor)
	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", descriptor.Kind, err)
	}

	c.current = chart
	log.WithFields(log.Fields{
		"kind":   descriptor.Kind,
		"series": len(descriptor.Series),
	}).Info("[CANVAS] chart rendered")

	return chart, nil
}

// Current 返回当前图表，没有时返回 nil
func (c *Canvas) Current() service.Chart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Export 将当前图表编码为 PNG 写入 w
func (c *Canvas) Export(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNoChart
	}

	written, err := c.current.WriteTo(w)
	if err != nil {
		return fmt.Errorf("export chart: %w", err)
	}

	log.Debugf("[CANVAS] exported %d bytes", written)
	return nil
}

// Release 销毁当前图表
func (c *Canvas) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.release()
}

func (c *Canvas) release() {
	if c.current == nil {
		return
	}
	c.current.Destroy()
	c.current = nil
}
