package plot

import (
	"image/color"
	"math"
)

const (
	paletteSaturation = 0.7
	paletteLightness  = 0.6
	paletteAlpha      = 153 // 0.6
)

// Palette 生成 count 个色相均匀分布的颜色
// Palette returns count colors with evenly spaced hues.
func Palette(count int) []color.NRGBA {
	colors := make([]color.NRGBA, 0, count)
	for i := 0; i < count; i++ {
		hue := math.Mod(float64(i)*360/float64(count), 360)
		colors = append(colors, hsla(hue, paletteSaturation, paletteLightness, paletteAlpha))
	}
	return colors
}

func hsla(hue, saturation, lightness float64, alpha uint8) color.NRGBA {
	chroma := (1 - math.Abs(2*lightness-1)) * saturation
	segment := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(segment, 2)-1))

	var r, g, b float64
	switch {
	case segment < 1:
		r, g, b = chroma, x, 0
	case segment < 2:
		r, g, b = x, chroma, 0
	case segment < 3:
		r, g, b = 0, chroma, x
	case segment < 4:
		r, g, b = 0, x, chroma
	case segment < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := lightness - chroma/2
	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: alpha,
	}
}
