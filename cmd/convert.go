/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/masnyjimmy/specsheet/convert"
	"github.com/masnyjimmy/specsheet/document"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a specification file into a CSV sheet",
	Run: func(cmd *cobra.Command, args []string) {

		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		mode, _ := cmd.Flags().GetString("mode")

		if res := ConvertFile(input, output, mode); res != 0 {
			os.Exit(res)
		}
	},
}

var errorLogger *log.Logger = log.New(os.Stderr, "Error", log.Ltime)

// defaultOutput derives "<base>_output.csv" from the input filename.
func defaultOutput(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + "_output.csv"
}

func ConvertFile(input, output, modeTag string) int {

	mode, err := convert.ParseMode(modeTag)

	if err != nil {
		errorLogger.Printf("Invalid mode: %v", err)
		return 1
	}

	format, err := document.FormatFromPath(input)

	if err != nil {
		errorLogger.Printf("Unable to derive format from %q: %v", input, err)
		return 1
	}

	log.Printf("Reading %v", input)

	bytes, err := os.ReadFile(input)

	if err != nil {
		errorLogger.Printf("Unable to read file \"%v\": %v", input, err)
		return 2
	}

	if output == "" {
		output = defaultOutput(input)
	}

	log.Printf("Converting (%v layout) to %v", mode, output)

	if err := convert.Convert(bytes, format, mode, output); err != nil {
		errorLogger.Printf("Conversion failed: %v", err)
		return 3
	}

	log.Printf("Finished succesfully :)")
	return 0
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("input", "i", "", "Specification file (json, yaml or yml)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagFilename("input", "json", "yaml", "yml")

	convertCmd.Flags().StringP("output", "o", "", "Output CSV filepath (default: <input>_output.csv)")
	convertCmd.MarkFlagFilename("output", "csv")

	convertCmd.Flags().StringP("mode", "m", string(convert.ModeSchemas), "Row layout: schemas or operations")
}
