// Package main implements the ad_agent CLI tool for brand-aware ad generation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ad-generator/internal/config"
	"github.com/jonathan/ad-generator/internal/identity"
	"github.com/jonathan/ad-generator/internal/imagen"
	"github.com/jonathan/ad-generator/internal/llm"
	"github.com/jonathan/ad-generator/internal/markdown"
	"github.com/jonathan/ad-generator/internal/observability"
	"github.com/jonathan/ad-generator/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ad generation pipeline for a website",
	Long:  "Extracts the visual identity from a company website, analyzes its business activity, generates one ad image per activity axis and composites the company logo onto each image.",
	RunE:  runRun,
}

var (
	runURL        string
	runOutputDir  string
	runLogoDir    string
	runConfigPath string
	runMaxImages  int
	runUseBrowser bool
	runVerbose    bool
	runYes        bool
)

func init() {
	runCmd.Flags().StringVarP(&runURL, "url", "u", "", "Company website URL (required)")
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", pipeline.DefaultOutputDir, "Directory for generated images and the run report")
	runCmd.Flags().StringVar(&runLogoDir, "logo-dir", identity.DefaultLogoDir, "Directory for the downloaded logo")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to JSON config file")
	runCmd.Flags().IntVar(&runMaxImages, "max-images", identity.DefaultMaxHeroImages, "Maximum hero images to collect")
	runCmd.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Render the page with a headless browser for SPA sites")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Skip the confirmation prompt before image generation")

	if err := runCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

// buildConfig merges configuration sources in precedence order:
// CLI flags > config file > environment.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.FromEnv()

	if runConfigPath != "" {
		fileCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg.URL = runURL
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		cfg.Output = runOutputDir
	}
	if cmd.Flags().Changed("logo-dir") || cfg.LogoDir == "" {
		cfg.LogoDir = runLogoDir
	}
	if cmd.Flags().Changed("max-images") || cfg.MaxHeroImages == 0 {
		cfg.MaxHeroImages = runMaxImages
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ImageAPIKey() == "" {
		return fmt.Errorf("config error: OPENAI_API_KEY must be set for image generation")
	}

	ctx := context.Background()

	llmClient, err := llm.NewClient(ctx, cfg.LLMConfig())
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer llmClient.Close()

	imageClient, err := imagen.NewOpenAIClient(cfg.ImageAPIKey(), cfg.ImageModel)
	if err != nil {
		return fmt.Errorf("failed to create image client: %w", err)
	}

	opts := pipeline.Options{
		URL:           cfg.URL,
		OutputDir:     cfg.Output,
		LogoDir:       cfg.LogoDir,
		MaxHeroImages: cfg.MaxHeroImages,
		UseBrowser:    cfg.UseBrowser,
		Verbose:       cfg.Verbose,
		LLM:           llmClient,
		Images:        imageClient,
		Markdown:      markdown.NewClient(cfg.MarkdownEndpoint, cfg.MarkdownToken),
	}
	if !runYes {
		opts.Confirm = confirmGeneration
	}

	rep, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVisualIdentity(rep.Identity)
	printer.PrintBusinessAxes(rep.BusinessAxes)
	printer.PrintAdPrompts(rep.AdPrompts)
	printer.PrintGeneratedAssets(rep.GeneratedFiles)

	reportPath := filepath.Join(cfg.Output, "report.json")
	if err := rep.Write(reportPath); err != nil {
		return err
	}
	fmt.Printf("Report: %s\n", reportPath)

	return nil
}

// confirmGeneration asks on stdin before spending money on image generation.
func confirmGeneration(imageCount int) bool {
	fmt.Printf("About to generate %d images via the OpenAI API. Continue? [y/N] ", imageCount)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
