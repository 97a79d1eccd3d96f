package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelens/resume-scorer/internal/catalog"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List domain categories, labels and catalog keys",
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load domain catalog: %w", err)
	}

	fmt.Println("Categories:")
	for _, c := range cat.Categories() {
		fmt.Printf("  %s\n", c)
	}

	fmt.Println()
	fmt.Println("Domain labels:")
	for _, m := range cat.LabelMappings() {
		fmt.Printf("  %s -> %s\n", m.Label, m.Key)
	}

	fmt.Println()
	fmt.Println("Catalog keys:")
	for _, k := range cat.Keys() {
		fmt.Printf("  %-20s %d keywords\n", k, cat.KeywordCount(k))
	}
	return nil
}
