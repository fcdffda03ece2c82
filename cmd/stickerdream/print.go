package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/config"
	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Submit an image or PDF to a printer",
	Long: `Submit a file (png, jpg, jpeg, gif, pdf, tiff, tif) to a printer.

The destination is resolved in order: --printer flag, the printer from the
config file, then the CUPS default destination (or the first printer listed).
With --stdin the image bytes are read from standard input instead of a file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fromStdin, _ := cmd.Flags().GetBool("stdin")
		if !fromStdin && len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: a file argument or --stdin is required")
			os.Exit(1)
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts := printOptionsFromFlags(cmd)
		client := cups.New()

		printer, _ := cmd.Flags().GetString("printer")
		printer, err = resolvePrinter(client, printer, cfg.Printer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var jobID string
		if fromStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
				os.Exit(1)
			}
			jobID, err = client.PrintBytes(printer, data, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("submitted %s from stdin to %s as job %s\n", humanize.Bytes(uint64(len(data))), printer, jobID)
			return
		}

		jobID, err = client.PrintFile(printer, args[0], opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("submitted %s to %s as job %s\n", args[0], printer, jobID)
	},
}

// resolvePrinter picks the destination: explicit flag, then config, then the
// CUPS default (or first listed).
func resolvePrinter(client *cups.Client, flagPrinter, cfgPrinter string) (string, error) {
	if flagPrinter != "" {
		return flagPrinter, nil
	}
	if cfgPrinter != "" {
		return cfgPrinter, nil
	}
	target, err := client.FirstAvailable()
	if err != nil {
		return "", err
	}
	return target.Name, nil
}

func printOptionsFromFlags(cmd *cobra.Command) cups.PrintOptions {
	copies, _ := cmd.Flags().GetInt("copies")
	media, _ := cmd.Flags().GetString("media")
	gray, _ := cmd.Flags().GetBool("gray")
	fit, _ := cmd.Flags().GetBool("fit")
	extra, _ := cmd.Flags().GetStringToString("option")

	return cups.PrintOptions{
		Copies:    copies,
		Media:     media,
		Grayscale: gray,
		FitToPage: fit,
		Extra:     extra,
	}
}

func init() {
	printCmd.Flags().StringP("printer", "p", "", "destination printer name")
	printCmd.Flags().IntP("copies", "n", 1, "number of copies")
	printCmd.Flags().StringP("media", "m", "", "media size label (e.g. A4, 4x6)")
	printCmd.Flags().Bool("gray", false, "print in grayscale")
	printCmd.Flags().Bool("fit", false, "scale content to fit the page")
	printCmd.Flags().StringToStringP("option", "o", nil, "extra key=value options passed to lp")
	printCmd.Flags().Bool("stdin", false, "read image bytes from standard input")
}
