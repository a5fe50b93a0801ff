package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bhavya-dabas/docrank"
	"github.com/bhavya-dabas/docrank/extract"
)

func analyzeCmd() *cobra.Command {
	var configPath string
	var inputFile string
	var inputDir string
	var outputFile string
	var threshold float64
	var explain bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a document collection for a persona and write ranked results",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if inputFile != "" {
				config.Input.File = inputFile
			}
			if inputDir != "" {
				config.Input.Dir = inputDir
			}
			if outputFile != "" {
				config.Output.File = outputFile
			}
			if cmd.Flags().Changed("threshold") {
				config.Analysis.RelevanceThreshold = threshold
			}

			log := newLogger(verbose || explain)

			in, err := docrank.LoadInput(config.Input.File)
			if err != nil {
				return err
			}

			bar := getProgressBar(len(in.Documents), "Analyzing documents")

			extractConfig := extract.DefaultConfig()
			extractConfig.MaxOCRPages = config.OCR.MaxPages
			extractConfig.MinOCRConfidence = float64(config.OCR.MinConfidence)
			extractConfig.OCRLanguage = config.OCR.Language

			opts := []docrank.Option{
				docrank.WithInputDir(config.Input.Dir),
				docrank.WithRelevanceThreshold(config.Analysis.RelevanceThreshold),
				docrank.WithExtractConfig(extractConfig),
				docrank.WithLogger(log),
				docrank.WithProgress(func(filename string, sections int) {
					_ = bar.Add(1)
				}),
			}
			if explain {
				opts = append(opts, docrank.WithExplanations())
			}

			result := docrank.New(opts...).Run(in)
			_ = bar.Finish()
			fmt.Fprintln(cmd.OutOrStdout())

			if err := docrank.ValidateResult(result); err != nil {
				return fmt.Errorf("invalid result: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(config.Output.File), 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := docrank.WriteResult(result, config.Output.File); err != nil {
				return err
			}

			printSummary(cmd, result, config.Output.File)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input JSON file (documents, persona, job)")
	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "directory containing the PDF files")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output JSON file")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.3, "relevance threshold a section must exceed")
	cmd.Flags().BoolVar(&explain, "explain", false, "log per-signal importance breakdowns")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

func printSummary(cmd *cobra.Command, result *docrank.Result, outputPath string) {
	out := cmd.OutOrStdout()
	color.New(color.FgGreen, color.Bold).Fprintln(out, "Analysis complete")
	fmt.Fprintf(out, "  Persona:     %s\n", result.Metadata.Persona)
	fmt.Fprintf(out, "  Documents:   %d\n", len(result.Metadata.InputDocuments))
	fmt.Fprintf(out, "  Sections:    %d analyzed, %d selected\n",
		result.Metadata.TotalSectionsAnalyzed, result.Metadata.TopSectionsSelected)
	fmt.Fprintf(out, "  Subsections: %d\n", len(result.SubsectionAnalysis))
	fmt.Fprintf(out, "  Output:      %s\n", color.CyanString(outputPath))
}
