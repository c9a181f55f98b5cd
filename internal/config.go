package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ImageExt    []string `mapstructure:"image_extensions"`
	VideoExt    []string `mapstructure:"video_extensions"`
	ImagePrefix string   `mapstructure:"image_prefix"`
	VideoPrefix string   `mapstructure:"video_prefix"`
	UseExifTool bool     `mapstructure:"use_exiftool"`
}

// LoadConfig returns the built-in defaults. There is deliberately no config
// file; the only runtime override is the --exiftool flag applied by the caller.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("image_extensions", []string{".jpg", ".jpeg", ".png", ".heic"})
	v.SetDefault("video_extensions", []string{".mov", ".mp4", ".mkv"})
	v.SetDefault("image_prefix", "IMG_")
	v.SetDefault("video_prefix", "VID_")
	v.SetDefault("use_exiftool", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
