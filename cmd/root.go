package cmd

import (
	"errors"
	"fmt"
	"os"

	cfgpkg "github.com/Ericbutler1209/Team-Yellow/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config at load time)
	cfgFile string
	debug   bool
	// Report-shaping flags (override config if set)
	flagBarWidth int
	flagAgeBin   int
	flagBMIBin   int
	flagFill     string
	// Output flags
	outputPath string
	asJSON     bool
	saveReport bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "insurance <csv> <N>",
	Short: "Summarize an insurance CSV: stats, histograms, and charge analyses",
	Long: `Loads up to N rows of the insured-individuals dataset
(age,sex,bmi,children,smoker,region,charges) and prints the record
listing, per-column statistics, BMI and smoker histograms, the two
charge analyses, age histograms, and the children breakdown.`,
	Args: checkArgs,
}

// usageError carries the process exit status for invocation mistakes.
type usageError struct {
	code int
	msg  string
}

func (e *usageError) Error() string { return e.msg }

func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &usageError{code: 64, msg: fmt.Sprintf("expected <csv> <N>, got %d argument(s)", len(args))}
	}
	return nil
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing the command
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		var ue *usageError
		if errors.As(err, &ue) {
			os.Exit(ue.code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runReport
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.insurance/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.Flags().IntVar(&flagBarWidth, "bar-width", 0, "max horizontal bar width (overrides config)")
	rootCmd.Flags().IntVar(&flagAgeBin, "age-bin", 0, "age bin width (overrides config)")
	rootCmd.Flags().IntVar(&flagBMIBin, "bmi-bin", 0, "BMI bin width (overrides config)")
	rootCmd.Flags().StringVar(&flagFill, "fill", "", "bar fill character (overrides config)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "optional path to also write the report text")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON instead of text")
	rootCmd.Flags().BoolVar(&saveReport, "save", false, "also save the report under the configured reports_dir")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: built-in defaults still allow a run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.Flags()
	if f.Changed("bar-width") && flagBarWidth > 0 {
		cfg.BarWidth = flagBarWidth
	}
	if f.Changed("age-bin") && flagAgeBin > 0 {
		cfg.AgeBinWidth = flagAgeBin
	}
	if f.Changed("bmi-bin") && flagBMIBin > 0 {
		cfg.BMIBinWidth = flagBMIBin
	}
	if f.Changed("fill") && flagFill != "" {
		cfg.Fill = flagFill
	}

	// Guard nonsense values from file or env
	def := cfgpkg.Default()
	if cfg.BarWidth <= 0 {
		fmt.Fprintf(os.Stderr, "⚠ Warning: bar_width must be positive, using %d\n", def.BarWidth)
		cfg.BarWidth = def.BarWidth
	}
	if cfg.AgeBinWidth <= 0 {
		fmt.Fprintf(os.Stderr, "⚠ Warning: age_bin_width must be positive, using %d\n", def.AgeBinWidth)
		cfg.AgeBinWidth = def.AgeBinWidth
	}
	if cfg.BMIBinWidth <= 0 {
		fmt.Fprintf(os.Stderr, "⚠ Warning: bmi_bin_width must be positive, using %d\n", def.BMIBinWidth)
		cfg.BMIBinWidth = def.BMIBinWidth
	}
	if cfg.Fill == "" {
		cfg.Fill = def.Fill
	}
}
