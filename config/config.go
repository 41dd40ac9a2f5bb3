package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rodrigo-brito/ninjachart/model"
)

const envPrefix = "NINJACHART"

// Config CLI 的默认配置
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Output   string        `mapstructure:"output"`
	Image    ImageConfig   `mapstructure:"image"`
	Style    StyleConfig   `mapstructure:"style"`
	Overlay  OverlayConfig `mapstructure:"overlay"`
}

// ImageConfig 导出图片尺寸，单位为英寸
type ImageConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type StyleConfig struct {
	Grid    bool   `mapstructure:"grid"`
	FitLine string `mapstructure:"fit_line"`
	Corner  string `mapstructure:"corner"`
}

// OverlayConfig 折线图和散点图的趋势指标，周期为 0 表示关闭
type OverlayConfig struct {
	SMAPeriod       int     `mapstructure:"sma_period"`
	BollingerPeriod int     `mapstructure:"bollinger_period"`
	BollingerStdDev float64 `mapstructure:"bollinger_stddev"`
}

// Load 读取配置文件（可选）和 NINJACHART_* 环境变量
// Load reads defaults, an optional config file at path and NINJACHART_*
// environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "chart.png")
	v.SetDefault("image.width", 8)
	v.SetDefault("image.height", 6)
	v.SetDefault("style.grid", true)
	v.SetDefault("style.fit_line", string(model.LineDashed))
	v.SetDefault("style.corner", string(model.TopLeft))
	v.SetDefault("overlay.sma_period", 0)
	v.SetDefault("overlay.bollinger_period", 0)
	v.SetDefault("overlay.bollinger_stddev", 2.0)
}

// Validate 检查配置值
func (c Config) Validate() error {
	if c.Image.Width <= 0 || c.Image.Height <= 0 {
		return errors.New("image width and height must be positive")
	}

	if _, err := model.ParseLineStyle(c.Style.FitLine); err != nil {
		return err
	}

	if _, err := model.ParseCorner(c.Style.Corner); err != nil {
		return err
	}

	if c.Overlay.SMAPeriod < 0 || c.Overlay.BollingerPeriod < 0 {
		return errors.New("overlay periods must not be negative")
	}
	return nil
}
