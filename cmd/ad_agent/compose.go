package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ad-generator/internal/compose"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Composite a logo onto a base image",
	Long:  "Scales a logo to at most a fifth of the base image width and draws it in the top-left corner, writing the result as PNG.",
	RunE:  runCompose,
}

var (
	composeBase string
	composeLogo string
	composeOut  string
)

func init() {
	composeCmd.Flags().StringVar(&composeBase, "base", "", "Base image path (required)")
	composeCmd.Flags().StringVar(&composeLogo, "logo", "", "Logo image path (required)")
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "Output PNG path (required)")

	for _, flag := range []string{"base", "logo", "out"} {
		if err := composeCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(composeCmd)
}

func runCompose(_ *cobra.Command, _ []string) error {
	if err := compose.Overlay(composeBase, composeLogo, composeOut); err != nil {
		return err
	}
	fmt.Printf("Composited image: %s\n", composeOut)
	return nil
}
