package config

import (
	"github.com/spf13/viper"

	"github.com/yhzhou/srtgen/internal/subtitle"
)

// Config provides type-safe access to segmentation and output settings
type Config struct {
	viper *viper.Viper
}

// New creates a Config with default settings
func New() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{viper: v}
}

// NewFromEnv creates a Config that also reads SRTGEN_* environment variables
func NewFromEnv() *Config {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SRTGEN")
	v.AutomaticEnv()

	v.BindEnv("segment.max_units", "SRTGEN_MAX_UNITS")
	v.BindEnv("segment.min_units", "SRTGEN_MIN_UNITS")
	v.BindEnv("segment.max_duration", "SRTGEN_MAX_DURATION")
	v.BindEnv("output.format", "SRTGEN_FORMAT")

	return &Config{viper: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("segment.max_units", 25)
	v.SetDefault("segment.min_units", 10)
	v.SetDefault("segment.max_duration", 10.0)
	v.SetDefault("output.format", "srt")
}

// MaxLineUnits returns the line length ceiling
func (c *Config) MaxLineUnits() int {
	return c.viper.GetInt("segment.max_units")
}

// MinLineUnits returns the lower bound of the preferred break band
func (c *Config) MinLineUnits() int {
	return c.viper.GetInt("segment.min_units")
}

// MaxLineDuration returns the per-line duration cap in seconds
func (c *Config) MaxLineDuration() float64 {
	return c.viper.GetFloat64("segment.max_duration")
}

// OutputFormat returns the configured subtitle format name
func (c *Config) OutputFormat() string {
	return c.viper.GetString("output.format")
}

func (c *Config) SetMaxLineUnits(n int) {
	c.viper.Set("segment.max_units", n)
}

func (c *Config) SetMinLineUnits(n int) {
	c.viper.Set("segment.min_units", n)
}

func (c *Config) SetMaxLineDuration(seconds float64) {
	c.viper.Set("segment.max_duration", seconds)
}

func (c *Config) SetOutputFormat(format string) {
	c.viper.Set("output.format", format)
}

// Segmenter builds a segmenter from the configured limits
func (c *Config) Segmenter() *subtitle.Segmenter {
	s := subtitle.NewSegmenter()
	s.MaxLineUnits = c.MaxLineUnits()
	s.MinLineUnits = c.MinLineUnits()
	s.MaxLineDuration = c.MaxLineDuration()
	return s
}
