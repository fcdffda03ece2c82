// Package cups wraps the CUPS command-line surface (lpstat, lp, lpoptions,
// cupsenable, cupsaccept, cancel). All state lives in CUPS itself; the
// client only shells out and scrapes the human-readable output.
package cups

import (
	"log/slog"
	"os/exec"

	"github.com/felipevegaaraujo/sticker-dream/internal/cache"
)

// Runner executes one print-subsystem command and returns its combined output.
// Commands never pass through a shell, so arguments cannot inject extra tokens.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(name string, args ...string) (string, error)

func (f RunnerFunc) Run(name string, args ...string) (string, error) {
	return f(name, args...)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// Client talks to the local CUPS scheduler through its CLI tools.
type Client struct {
	run  Runner
	log  *slog.Logger
	caps *cache.Cache
}

type Option func(*Client)

// WithRunner replaces the command runner (used by tests).
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.run = r
		}
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client backed by the real CUPS command-line tools.
func New(opts ...Option) *Client {
	c := &Client{
		run:  execRunner{},
		log:  slog.Default(),
		caps: cache.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
