package config

// Config holds visionocr configuration.
// Loaded from ./config.yaml or ~/.visionocr/config.yaml.
type Config struct {
	Helper   HelperCfg   `mapstructure:"helper" yaml:"helper"`
	Defaults DefaultsCfg `mapstructure:"defaults" yaml:"defaults"`
	LogLevel string      `mapstructure:"log_level" yaml:"log_level"`
}

// HelperCfg locates the Swift recognition helper and its toolchain.
type HelperCfg struct {
	// Script is the helper script path. Empty means the home-directory layout.
	Script string `mapstructure:"script" yaml:"script"`
	// Bin is the compiled helper path. Empty means the home-directory layout.
	Bin string `mapstructure:"bin" yaml:"bin"`
	// Runner is the interpreter prefix for running the script directly.
	Runner []string `mapstructure:"runner" yaml:"runner"`
	// Compiler is the toolchain prefix for compile_helper.
	Compiler []string `mapstructure:"compiler" yaml:"compiler"`
}

// DefaultsCfg specifies recognition defaults applied when a caller omits a
// parameter.
type DefaultsCfg struct {
	Languages          []string `mapstructure:"languages" yaml:"languages"`
	RecognitionLevel   string   `mapstructure:"recognition_level" yaml:"recognition_level"`
	LanguageCorrection bool     `mapstructure:"language_correction" yaml:"language_correction"`
	SortReadingOrder   bool     `mapstructure:"sort_reading_order" yaml:"sort_reading_order"`
	MinConfidence      float64  `mapstructure:"min_confidence" yaml:"min_confidence"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Helper: HelperCfg{
			Runner:   []string{"xcrun", "swift"},
			Compiler: []string{"xcrun", "swiftc", "-O"},
		},
		Defaults: DefaultsCfg{
			Languages:          []string{"ja-JP", "en-US"},
			RecognitionLevel:   "accurate",
			LanguageCorrection: true,
			SortReadingOrder:   true,
			MinConfidence:      0.0,
		},
		LogLevel: "info",
	}
}
