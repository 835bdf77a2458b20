package assembler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Text representation of the machine words
type OutputFormat string

const (
	OutputFormat_Hex    OutputFormat = "hex"
	OutputFormat_Binary OutputFormat = "binary"
)

// When to color the output
type ColorMode string

const (
	ColorMode_Auto   ColorMode = "auto"
	ColorMode_Always ColorMode = "always"
	ColorMode_Never  ColorMode = "never"
)

type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`
	// If set, records are also written to this file as JSON
	File string `mapstructure:"file"`
}

// Returns the slog level of the configured level name
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, utils.MakeError(ErrInvalidConfig, "unknown log level '%v'", c.Level)
	}

	return level, nil
}

// Settings of the assembler command line
type Config struct {
	// Register width
	XLEN int `mapstructure:"xlen"`
	// Machine word output format
	Format OutputFormat `mapstructure:"format"`
	// Stop at the first line with errors. Otherwise all lines are processed and
	// every error is reported
	HaltOnError bool `mapstructure:"halt_on_error"`
	// Reject immediates that do not fit the instruction layout
	Strict bool `mapstructure:"strict"`
	Color  ColorMode `mapstructure:"color"`
	Log    LogConfig `mapstructure:"log"`
}

// Returns the default configuration: 32 bit registers, hex output, stop at
// the first error
func DefaultConfig() Config {
	return Config{
		XLEN:        instructions.DefaultXLEN,
		Format:      OutputFormat_Hex,
		HaltOnError: true,
		Strict:      false,
		Color:       ColorMode_Auto,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Checks all the settings have supported values
func (c Config) Validate() error {
	if c.XLEN < 1 || c.XLEN > instructions.InstructionBits {
		return utils.MakeError(ErrInvalidConfig, "xlen must be between 1 and %v, got %v", instructions.InstructionBits, c.XLEN)
	}

	switch c.Format {
	case OutputFormat_Hex, OutputFormat_Binary:
	default:
		return utils.MakeError(ErrInvalidConfig, "unknown output format '%v', expected '%v' or '%v'", c.Format, OutputFormat_Hex, OutputFormat_Binary)
	}

	switch c.Color {
	case ColorMode_Auto, ColorMode_Always, ColorMode_Never:
	default:
		return utils.MakeError(ErrInvalidConfig, "unknown color mode '%v'", c.Color)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// Returns the settings of the single instruction assembler
func (c Config) AssemblerSettings() mc.AssemblerSettings {
	return mc.AssemblerSettings{
		XLEN:   c.XLEN,
		Strict: c.Strict,
	}
}

// Registers the default configuration values, so that every key is known to
// viper even if no config file or flag sets it
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("xlen", defaults.XLEN)
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("halt_on_error", defaults.HaltOnError)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("color", string(defaults.Color))
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}

// Decodes and validates the configuration from viper
func LoadConfig(v *viper.Viper) (Config, error) {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, utils.MakeError(ErrInvalidConfig, "%w", err)
	}

	config.Format = OutputFormat(strings.ToLower(string(config.Format)))
	config.Color = ColorMode(strings.ToLower(string(config.Color)))

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
