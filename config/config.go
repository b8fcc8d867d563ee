// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas"`
	Banner BannerConfig `mapstructure:"banner"`
	Font   FontConfig   `mapstructure:"font"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Output OutputConfig `mapstructure:"output"`
}

type CanvasConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type BannerConfig struct {
	Color       string  `mapstructure:"color"`
	HeightRatio float64 `mapstructure:"height_ratio"`
	StampStep   int     `mapstructure:"stamp_step"`
	BlurSigma   float64 `mapstructure:"blur_sigma"`
}

type FontConfig struct {
	Candidates    []string `mapstructure:"candidates"`
	BaseSize      int      `mapstructure:"base_size"`
	MinSize       int      `mapstructure:"min_size"`
	SizeStep      int      `mapstructure:"size_step"`
	TitleColor    string   `mapstructure:"title_color"`
	MaxWidthRatio float64  `mapstructure:"max_width_ratio"`
	LineSpacing   int      `mapstructure:"line_spacing"`
	StrokeWidth   int      `mapstructure:"stroke_width"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type OutputConfig struct {
	DefaultPath string `mapstructure:"default_path"`
	JPEGQuality int    `mapstructure:"jpeg_quality"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	setDefaults(viperInstance)

	viperInstance.AddConfigPath(GetEnv("POSTERGEN_CONFIG_DIR", "./config"))
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		// без config.yaml работаем на дефолтах
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setDefaults устанавливает значения по умолчанию (шаблон Pinterest 1000x1500)
func setDefaults(v *viper.Viper) {
	v.SetDefault("canvas.width", 1000)
	v.SetDefault("canvas.height", 1500)

	v.SetDefault("banner.color", "#FFFFFF")
	v.SetDefault("banner.height_ratio", 0.22)
	v.SetDefault("banner.stamp_step", 20)
	v.SetDefault("banner.blur_sigma", 2.0)

	v.SetDefault("font.candidates", []string{
		"/System/Library/Fonts/Supplemental/Impact.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"arial.ttf",
		"Arial.ttf",
	})
	v.SetDefault("font.base_size", 90)
	v.SetDefault("font.min_size", 50)
	v.SetDefault("font.size_step", 5)
	v.SetDefault("font.title_color", "#4B6F44")
	v.SetDefault("font.max_width_ratio", 0.85)
	v.SetDefault("font.line_spacing", 20)
	v.SetDefault("font.stroke_width", 3)

	v.SetDefault("http.timeout", 10*time.Second)

	v.SetDefault("output.default_path", "pinterest_poster.jpg")
	v.SetDefault("output.jpeg_quality", 95)
}
