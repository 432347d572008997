package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Report shaping
	BarWidth    int    `mapstructure:"bar_width" yaml:"bar_width"`
	AgeBinWidth int    `mapstructure:"age_bin_width" yaml:"age_bin_width"`
	BMIBinWidth int    `mapstructure:"bmi_bin_width" yaml:"bmi_bin_width"`
	Fill        string `mapstructure:"fill" yaml:"fill"`

	// Where --save puts rendered reports
	ReportsDir string `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// Default returns the built-in configuration used when no file, env, or
// flag overrides anything.
func Default() *Global {
	return &Global{
		BarWidth:    50,
		AgeBinWidth: 5,
		BMIBinWidth: 5,
		Fill:        "#",
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.insurance/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".insurance")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("INSURANCE")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("bar_width", def.BarWidth)
	v.SetDefault("age_bin_width", def.AgeBinWidth)
	v.SetDefault("bmi_bin_width", def.BMIBinWidth)
	v.SetDefault("fill", def.Fill)
	// Registered empty so the key is known to viper and the env override
	// is surfaced by Unmarshal; the home-relative default resolves below.
	v.SetDefault("reports_dir", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".insurance")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve reports_dir default: ~/.insurance/reports
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".insurance", "reports")
	}
	return &c, nil
}
