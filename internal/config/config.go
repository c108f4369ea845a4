// Package config loads service configuration from defaults, an optional
// YAML file and RESISTORSCAN_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"resistor-scan/internal/band"
)

// Config holds the HTTP service configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Detection DetectionConfig `mapstructure:"detection"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

type DetectionConfig struct {
	MaxDimension        int    `mapstructure:"max_dimension"`
	Blur                string `mapstructure:"blur"`
	GaussianKernel      int    `mapstructure:"gaussian_kernel"`
	BilateralDiameter   int    `mapstructure:"bilateral_diameter"`
	BilateralSigmaColor int    `mapstructure:"bilateral_sigma_color"`
	BilateralSigmaSpace int    `mapstructure:"bilateral_sigma_space"`
	UseAdaptive         bool   `mapstructure:"use_adaptive"`
	AdaptiveBlockSize   int    `mapstructure:"adaptive_block_size"`
	AdaptiveConstant    int    `mapstructure:"adaptive_constant"`
	MorphKernel         int    `mapstructure:"morph_kernel"`
	MinRegionArea       int    `mapstructure:"min_region_area"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration with defaults, then the file at path (when
// non-empty), then environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := band.DefaultParams()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_bytes", int64(10<<20))
	v.SetDefault("detection.max_dimension", def.MaxDimension)
	v.SetDefault("detection.blur", "gaussian")
	v.SetDefault("detection.gaussian_kernel", def.GaussianKernel)
	v.SetDefault("detection.bilateral_diameter", def.BilateralDiameter)
	v.SetDefault("detection.bilateral_sigma_color", def.BilateralSigmaColor)
	v.SetDefault("detection.bilateral_sigma_space", def.BilateralSigmaSpace)
	v.SetDefault("detection.use_adaptive", false)
	v.SetDefault("detection.adaptive_block_size", def.AdaptiveBlockSize)
	v.SetDefault("detection.adaptive_constant", def.AdaptiveConstant)
	v.SetDefault("detection.morph_kernel", def.MorphKernel)
	v.SetDefault("detection.min_region_area", 0)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("RESISTORSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Params converts the detection section into pipeline parameters.
func (c DetectionConfig) Params() band.DetectionParams {
	p := band.DefaultParams()
	p.MaxDimension = c.MaxDimension
	if strings.EqualFold(c.Blur, "bilateral") {
		p.Blur = band.BlurBilateral
	}
	p.GaussianKernel = c.GaussianKernel
	p.BilateralDiameter = c.BilateralDiameter
	p.BilateralSigmaColor = c.BilateralSigmaColor
	p.BilateralSigmaSpace = c.BilateralSigmaSpace
	p.UseAdaptiveThreshold = c.UseAdaptive
	p.AdaptiveBlockSize = c.AdaptiveBlockSize
	p.AdaptiveConstant = c.AdaptiveConstant
	p.MorphKernel = c.MorphKernel
	p.MinRegionArea = c.MinRegionArea
	return p
}
