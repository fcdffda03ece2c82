package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs [jobID]",
	Short: "Show the print queue, optionally for one job",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := ""
		if len(args) > 0 {
			jobID = args[0]
		}
		out, err := cups.New().JobStatus(jobID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if out == "" {
			fmt.Println("queue is empty")
			return
		}
		fmt.Println(out)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <jobID>",
	Short: "Cancel a print job",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cups.New().CancelJob(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("cancelled job %s\n", args[0])
	},
}
