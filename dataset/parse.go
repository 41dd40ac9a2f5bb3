package dataset

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/ninjachart/model"
)

const separator = ","

// 仅接受十进制小数点形式，不接受十六进制、Inf、NaN 或本地化格式
var numericForm = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Parse 将逗号分隔的文本解析为值序列
// Parse splits raw on commas and coerces every trimmed token that has a decimal
// numeric form into a number. Other tokens are kept as labels. Blank input
// yields an empty sequence.
func Parse(raw string) []model.Value {
	if strings.TrimSpace(raw) == "" {
		return []model.Value{}
	}

	tokens := lo.Map(strings.Split(raw, separator), func(token string, _ int) string {
		return strings.TrimSpace(token)
	})

	return lo.Map(tokens, func(token string, _ int) model.Value {
		return ParseToken(token)
	})
}

// ParseToken 解析单个已去除空白的标记
func ParseToken(token string) model.Value {
	if !numericForm.MatchString(token) {
		return model.Text(token)
	}

	number, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// out of float64 range
		return model.Text(token)
	}

	return model.NumberFromToken(token, number)
}
