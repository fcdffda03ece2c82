package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <printer>",
	Short: "Resume a paused printer",
	Long: `Check whether a printer is accepting jobs and resume it if not.

With --check the printer state is reported without side effects.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checkOnly, _ := cmd.Flags().GetBool("check")
		msg, err := cups.New().EnsureReady(args[0], !checkOnly)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(msg)
	},
}

func init() {
	resumeCmd.Flags().Bool("check", false, "report state only, never resume")
}
