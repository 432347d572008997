package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
	"github.com/Ericbutler1209/Team-Yellow/internal/report"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		loadConfig()
	}
	path := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return &usageError{code: 2, msg: fmt.Sprintf("N must be a positive integer, got %q", args[1])}
	}
	if n <= 0 {
		return &usageError{code: 2, msg: fmt.Sprintf("N must be a positive integer, got %d", n)}
	}

	records, err := parser.LoadFirstN(path, n)
	if err != nil {
		return err
	}
	if debug {
		fmt.Fprintf(os.Stderr, "loaded %d record(s) from %s\n", len(records), path)
	}

	opt := report.Options{
		BarWidth:    cfg.BarWidth,
		AgeBinWidth: cfg.AgeBinWidth,
		BMIBinWidth: cfg.BMIBinWidth,
		Fill:        []rune(cfg.Fill)[0],
	}
	rep := report.Build(path, records, opt)
	if debug {
		fmt.Fprintf(os.Stderr, "report %s generated at %s\n", rep.ID, rep.GeneratedAt.Format(time.RFC3339))
	}

	if asJSON {
		b, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(b))
	} else {
		fmt.Print(rep.Render())
	}

	if outputPath != "" {
		if err := rep.Save(outputPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Wrote report to %s\n", outputPath)
	}
	if saveReport {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := filepath.Join(cfg.ReportsDir, fmt.Sprintf("%s-%s.txt", base, rep.ID))
		if err := rep.Save(out); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Printf("✓ Saved report to %s\n", out)
	}
	return nil
}
