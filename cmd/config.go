package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/Ericbutler1209/Team-Yellow/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set report configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			loadConfig()
		}
		fmt.Printf("bar_width: %d\n", cfg.BarWidth)
		fmt.Printf("age_bin_width: %d\n", cfg.AgeBinWidth)
		fmt.Printf("bmi_bin_width: %d\n", cfg.BMIBinWidth)
		fmt.Printf("fill: %s\n", cfg.Fill)
		fmt.Printf("reports_dir: %s\n", cfg.ReportsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "bar_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for bar_width: %v", val)
			}
			cfg.BarWidth = i
		case "age_bin_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for age_bin_width: %v", val)
			}
			cfg.AgeBinWidth = i
		case "bmi_bin_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for bmi_bin_width: %v", val)
			}
			cfg.BMIBinWidth = i
		case "fill":
			if val == "" {
				return fmt.Errorf("fill must not be empty")
			}
			cfg.Fill = val
		case "reports_dir":
			cfg.ReportsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
