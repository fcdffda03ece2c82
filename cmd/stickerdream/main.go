package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stickerdream",
	Short: "Generate AI sticker art and print it on a local CUPS printer",
	Long: `sticker-dream is a thin CLI over the CUPS command-line tools plus an
AI image-generation API. It can list printers, submit images, keep paused
printers alive, and turn a text prompt into a printed sticker in one step.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present (ignore errors)
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/sticker-dream/config.yaml)")

	rootCmd.AddCommand(printersCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(dreamCmd)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
