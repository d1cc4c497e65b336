// Package main provides the entry point for the ad generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ad_agent",
	Short: "Brand-aware ad image generator",
	Long:  "ad_agent extracts a company's visual identity (logo, color palette, hero images) from its website, analyzes its business activity via LLM, and generates ad images with the company logo composited on top.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
