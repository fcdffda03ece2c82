package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
)

var printersCmd = &cobra.Command{
	Use:   "printers",
	Short: "List printers known to CUPS",
	Run: func(cmd *cobra.Command, args []string) {
		usbOnly, _ := cmd.Flags().GetBool("usb")
		long, _ := cmd.Flags().GetBool("long")
		jsonOut, _ := cmd.Flags().GetBool("json")

		client := cups.New()

		var printers []cups.Printer
		var err error
		if usbOnly {
			printers, err = client.USBPrinters()
		} else {
			printers, err = client.Printers()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing printers: %v\n", err)
			os.Exit(1)
		}

		if jsonOut {
			out, _ := json.MarshalIndent(printers, "", "  ")
			fmt.Println(string(out))
			return
		}

		if len(printers) == 0 {
			fmt.Println("no printers found")
			return
		}

		for _, p := range printers {
			mark := " "
			if p.IsDefault {
				mark = "*"
			}
			transport := "net"
			if p.IsUSB {
				transport = "usb"
			}
			fmt.Printf("%s %-28s [%s] %s\n", mark, p.Name, transport, p.Status)
			if long {
				printCapabilities(client, p.Name)
			}
		}
	},
}

func printCapabilities(client *cups.Client, name string) {
	caps, err := client.PrinterCapabilities(name)
	if err != nil {
		fmt.Printf("    (options unavailable: %v)\n", err)
		return
	}
	if caps.Description != "" {
		fmt.Printf("    %s\n", caps.Description)
	}
	for _, opt := range caps.Options {
		if opt.Option != "PageSize" && opt.Option != "ColorModel" {
			continue
		}
		fmt.Printf("    %s: %s (default %s)\n", opt.Option, strings.Join(opt.Choices, " "), opt.Default)
	}
}

func init() {
	printersCmd.Flags().Bool("usb", false, "only show USB-attached printers")
	printersCmd.Flags().BoolP("long", "l", false, "include description and media options")
	printersCmd.Flags().Bool("json", false, "Output as JSON")
}
