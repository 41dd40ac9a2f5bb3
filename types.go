package ninjachart

import (
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
)

type (
	Request      = model.Request
	ChartKind    = model.ChartKind
	StyleOptions = model.StyleOptions
	FitResult    = model.FitResult
	Descriptor   = plot.Descriptor
)

const (
	KindBar        = model.KindBar
	KindLine       = model.KindLine
	KindPie        = model.KindPie
	KindDoughnut   = model.KindDoughnut
	KindScatter    = model.KindScatter
	KindScatterFit = model.KindScatterFit
)
