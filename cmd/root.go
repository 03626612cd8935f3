/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "specsheet",
	Short: "Flatten OpenAPI documents into CSV sheets",
	Long: `specsheet converts an OpenAPI specification (JSON or YAML) into a
flat CSV suitable for spreadsheet-style review: one row per schema
property, or one row per path+method operation.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
