// Package main provides the entry point for the fit_agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_agent",
	Short: "Body-shape estimation and shirt size matching",
	Long:  "fit_agent estimates garment measurements from height, weight and a body-shape archetype, produces per-joint scales for garment mesh deformation, and recommends a shirt size with a per-region fit verdict.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
