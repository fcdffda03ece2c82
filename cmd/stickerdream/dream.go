package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/config"
	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
	"github.com/felipevegaaraujo/sticker-dream/internal/genimage"
)

var dreamCmd = &cobra.Command{
	Use:   "dream <subject>",
	Short: "Generate sticker art from a prompt and print it",
	Long: `Generate sticker artwork for the given subject with the OpenAI Images
API and submit it straight to a printer.

Requires OPENAI_API_KEY in the environment or a .env file. Use --keep to
also save the generated image under the configured output directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		gen, err := genimage.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gen.Model = cfg.Image.Model
		gen.Size = cfg.Image.Size

		fmt.Printf("generating sticker art for %q...\n", args[0])
		data, err := gen.Generate(cmd.Context(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("received %s of image data\n", humanize.Bytes(uint64(len(data))))

		if keep, _ := cmd.Flags().GetBool("keep"); keep {
			outDir, _ := cmd.Flags().GetString("out")
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			path, err := saveImage(outDir, data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("saved %s\n", path)
		}

		client := cups.New()
		printer, _ := cmd.Flags().GetString("printer")
		printer, err = resolvePrinter(client, printer, cfg.Printer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		jobID, err := client.PrintBytes(printer, data, cups.PrintOptions{FitToPage: true})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("printing on %s as job %s\n", printer, jobID)
	},
}

func saveImage(dir string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("sticker-%s.png", time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func init() {
	dreamCmd.Flags().StringP("printer", "p", "", "destination printer name")
	dreamCmd.Flags().Bool("keep", false, "also save the generated image to disk")
	dreamCmd.Flags().String("out", "", "directory for saved images (overrides config)")
}
