// Package main provides the CLI entry point for twbmeta.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/metagraph-io/twbmeta/internal/config"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/batch"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/output"
)

var (
	outputPath      string
	outputDir       string
	pretty          bool
	mode            string
	worksheetsDir   string
	showDiagnostics bool
	workers         int
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "twbmeta [workbook.twb|workbook.twbx]...",
		Short: "Extract deep metadata from Tableau workbooks",
		Long: `twbmeta extracts deep metadata from Tableau workbook files (.twb/.twbx) -
calculated fields and LOD expressions, dashboard layout hierarchies, worksheet
zones, filter configurations, dashboard actions and story narratives - and
outputs one canonical JSON-LD document per workbook.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for a single workbook (default: stdout)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for per-workbook output files")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "", "Extraction mode: light, standard, verbose")
	rootCmd.Flags().StringVar(&worksheetsDir, "worksheets-dir", "", "Directory for per-worksheet output files")
	rootCmd.Flags().BoolVar(&showDiagnostics, "diagnostics", false, "Print parse diagnostics to stderr")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size for multi-file extraction (default: GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("load config: %w", err)
	}
	applyConfig(cfg)

	opts, err := extractOptions()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return runSingle(args[0], opts)
	}
	return runBatch(cmd.Context(), args, opts)
}

func applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if mode == "" {
		mode = cfg.Mode
	}
	if !pretty {
		pretty = cfg.Pretty
	}
	if workers == 0 {
		workers = cfg.Workers
	}
}

func extractOptions() (twbmeta.Options, error) {
	opts := twbmeta.DefaultOptions()
	switch mode {
	case "", "standard":
		opts.Mode = twbmeta.ModeStandard
	case "light":
		opts.Mode = twbmeta.ModeLight
	case "verbose":
		opts.Mode = twbmeta.ModeVerbose
	default:
		return opts, fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", mode)
	}
	return opts, nil
}

func runSingle(path string, opts twbmeta.Options) error {
	wb, diags, err := twbmeta.ParseFile(path, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if showDiagnostics {
		printDiagnostics(path, diags)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	switch {
	case outputPath != "":
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case outputDir != "":
		if err := writeWorkbookFile(wb, jsonData); err != nil {
			return err
		}
	default:
		fmt.Println(string(jsonData))
	}

	if worksheetsDir != "" {
		if err := writeWorksheetFiles(wb, worksheetsDir); err != nil {
			return fmt.Errorf("failed to write worksheet files: %w", err)
		}
	}
	return nil
}

func runBatch(ctx context.Context, paths []string, opts twbmeta.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := batch.Run(ctx, paths, opts, workers)
	if err != nil {
		return fmt.Errorf("batch extraction failed: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, failStyle.Render("FAIL")+" "+res.Path+dimStyle.Render(": "+res.Err.Error()))
			continue
		}
		if showDiagnostics {
			printDiagnostics(res.Path, res.Diagnostics)
		}
		jsonData, err := output.ToJSON(res.Workbook, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed for %s: %w", res.Path, err)
		}
		if outputDir != "" {
			if err := writeWorkbookFile(res.Workbook, jsonData); err != nil {
				return err
			}
		} else {
			fmt.Println(string(jsonData))
		}
		status := okStyle.Render("OK")
		if len(res.Diagnostics) > 0 {
			status = warnStyle.Render(fmt.Sprintf("OK (%d diagnostics)", len(res.Diagnostics)))
		}
		fmt.Fprintln(os.Stderr, status+" "+res.Path+" "+dimStyle.Render(res.Duration.Round(time.Millisecond).String()))
	}

	fmt.Fprintln(os.Stderr, dimStyle.Render(fmt.Sprintf("%d workbooks, %d failed", len(results), failed)))
	if failed > 0 {
		return fmt.Errorf("%d of %d workbooks failed", failed, len(results))
	}
	return nil
}

func writeWorkbookFile(wb *models.Workbook, jsonData []byte) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	filename := filepath.Join(outputDir, safeFileName(wb.Name)+".json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func writeWorksheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := range wb.Worksheets {
		ws := &wb.Worksheets[i]
		jsonData, err := output.WorksheetToJSON(ws, pretty)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, safeFileName(ws.Name)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}
	return nil
}

func printDiagnostics(path string, diags []models.Diagnostic) {
	for _, d := range diags {
		style := warnStyle
		if d.Severity == models.SeverityInfo {
			style = dimStyle
		}
		entity := ""
		if d.Entity != "" {
			entity = " [" + d.Entity + "]"
		}
		fmt.Fprintln(os.Stderr, style.Render(string(d.Severity))+" "+path+entity+": "+d.Message)
	}
}

// safeFileName keeps workbook and worksheet names usable as file names.
func safeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", string(os.PathSeparator), "_")
	return replacer.Replace(name)
}
