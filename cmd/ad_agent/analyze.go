package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/observability"
	"github.com/jonathan/ad-generator/internal/pipeline"
	"github.com/jonathan/ad-generator/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract the visual identity of a website",
	Long:  "Extracts the logo, color palette and hero images from a website, downloads the logo, and writes a visual identity report. No LLM or image generation calls are made.",
	RunE:  runAnalyze,
}

var (
	analyzeURL       string
	analyzeLogoDir   string
	analyzeMaxImages int
	analyzeOut       string
	analyzeVerbose   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "Company website URL (required)")
	analyzeCmd.Flags().StringVar(&analyzeLogoDir, "logo-dir", identity.DefaultLogoDir, "Directory for the downloaded logo")
	analyzeCmd.Flags().IntVar(&analyzeMaxImages, "max-images", identity.DefaultMaxHeroImages, "Maximum hero images to collect")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "visual_identity.json", "Path for the visual identity report")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := analyzeCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	vi := pipeline.ExtractIdentity(ctx, analyzeURL, analyzeLogoDir, analyzeMaxImages, analyzeVerbose)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVisualIdentity(vi)

	rep := report.New(analyzeURL, vi)
	if err := rep.Write(analyzeOut); err != nil {
		return err
	}
	fmt.Printf("Report: %s\n", analyzeOut)

	return nil
}
