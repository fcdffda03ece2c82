package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/felipevegaaraujo/sticker-dream/internal/config"
	"github.com/felipevegaaraujo/sticker-dream/internal/cups"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep printers alive by resuming them whenever they pause",
	Long: `Poll the printer directory on a fixed interval and resume any printer
that reports itself disabled or paused. Runs until interrupted.

Some USB printers drop into a paused state after sleep or a transient
connection loss; this keeps them usable unattended.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		interval := cfg.PollInterval()
		if ms, _ := cmd.Flags().GetInt("interval"); ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
		names, _ := cmd.Flags().GetStringSlice("printer")
		if len(names) == 0 {
			names = cfg.KeepalivePrinters
		}

		log := slog.Default()
		handle := cups.New().StartKeepAlive(cups.KeepAliveConfig{
			Interval: interval,
			Printers: names,
			OnResume: func(name string) {
				log.Info("resumed paused printer", "printer", name)
			},
			OnError: func(err error) {
				log.Error("keepalive tick failed", "error", err)
			},
		})

		fmt.Printf("watching printers every %s (ctrl-c to stop)\n", interval)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		handle.Stop()
		fmt.Println("stopped")
	},
}

func init() {
	watchCmd.Flags().IntP("interval", "i", 0, "poll interval in milliseconds (overrides config)")
	watchCmd.Flags().StringSliceP("printer", "p", nil, "printer names to watch (default all)")
}
