/*
Copyright © 2026 NAME HERE
*/
package cmd

import (
	"log"
	"net/http"
	"os"

	"github.com/masnyjimmy/specsheet/convert"
	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/preview"
	"github.com/spf13/cobra"
)

// ==================== Cobra Command ====================

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live CSV preview of a specification file",
	Run: func(cmd *cobra.Command, _ []string) {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			panic(err)
		}
		modeTag, _ := cmd.Flags().GetString("mode")
		addr, _ := cmd.Flags().GetString("addr")
		Serve(input, modeTag, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP(
		"input",
		"i",
		"openapi.yaml",
		"Specification file to watch",
	)
	serveCmd.Flags().StringP("mode", "m", string(convert.ModeSchemas), "Row layout: schemas or operations")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}

/*
When update
1. read bytes
2. load tree
3. extract records
4. render csv
*/
func renderFile(filename string, mode convert.Mode) ([]byte, error) {

	format, err := document.FormatFromPath(filename)

	if err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(filename)

	if err != nil {
		return nil, err
	}

	return convert.Render(bytes, format, mode)
}

func Serve(input, modeTag, addr string) {

	mode, err := convert.ParseMode(modeTag)

	if err != nil {
		log.Fatal(err)
	}

	artifact, err := renderFile(input, mode)

	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	options := preview.DefaultOptions()
	options.Mode = mode

	previewHandler := preview.New(artifact, options)

	watcher, err := preview.WatchFile(input, preview.DEFAULT_DEBOUNCE_TIME)

	if err != nil {
		log.Printf("Unable to watch for file updates: %v", err)
	} else {
		watchHandler := func() {
			for err := range watcher.Update {
				if err != nil {
					log.Print(err)
					continue
				}

				artifact, err := renderFile(input, mode)
				if err != nil {
					log.Printf("Unable to update preview: %v", err)
					continue
				}

				previewHandler.SetArtifact(artifact)
			}
		}
		go watchHandler()
	}
	log.Printf("Started server at http://localhost%v", addr)
	log.Fatal(http.ListenAndServe(addr, previewHandler.Handler(nil)))
}
