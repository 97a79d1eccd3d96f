// Package main provides the resumescore command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumescore",
	Short: "Resume scoring toolkit",
	Long:  "resumescore extracts text from PDF and DOCX resumes and scores them against domain keyword catalogs, producing section scores, feedback and recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
