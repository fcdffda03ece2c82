package cups

import (
	"fmt"
	"sync"
	"time"
)

// DefaultKeepAliveInterval is the pause between keepalive ticks.
const DefaultKeepAliveInterval = time.Second

// KeepAliveConfig controls the background printer keepalive loop.
type KeepAliveConfig struct {
	// Interval between ticks; DefaultKeepAliveInterval when zero.
	Interval time.Duration
	// Printers restricts the loop to these names. Empty means all printers.
	Printers []string
	// OnResume is invoked once per printer resumed in a tick.
	OnResume func(name string)
	// OnError receives tick failures; the loop keeps running regardless.
	OnError func(err error)
}

// KeepAlive is the stop handle for a running keepalive loop.
type KeepAlive struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Stop ends the loop and waits for it to exit. Stopping is cooperative: an
// in-flight tick runs to completion, no further tick is scheduled.
func (k *KeepAlive) Stop() {
	k.once.Do(func() { close(k.stop) })
	<-k.done
}

// StartKeepAlive starts a self-rescheduling timer that resumes any paused
// printer it finds on each tick. The next tick is scheduled only after the
// current one completes, so ticks never overlap.
func (c *Client) StartKeepAlive(cfg KeepAliveConfig) *KeepAlive {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultKeepAliveInterval
	}
	k := &KeepAlive{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(k.done)
		timer := time.NewTimer(cfg.Interval)
		defer timer.Stop()
		for {
			select {
			case <-k.stop:
				return
			case <-timer.C:
			}
			c.keepAliveTick(cfg)
			timer.Reset(cfg.Interval)
		}
	}()
	return k
}

func (c *Client) keepAliveTick(cfg KeepAliveConfig) {
	report := func(err error) {
		if cfg.OnError != nil {
			cfg.OnError(err)
		}
	}

	printers, err := c.Printers()
	if err != nil {
		report(fmt.Errorf("failed to poll printers: %w", err))
		return
	}

	var allowed map[string]bool
	if len(cfg.Printers) > 0 {
		allowed = make(map[string]bool, len(cfg.Printers))
		for _, name := range cfg.Printers {
			allowed[name] = true
		}
	}

	for _, p := range printers {
		if allowed != nil && !allowed[p.Name] {
			continue
		}
		if statusEnabled(p.Status) {
			continue
		}
		if err := c.Resume(p.Name); err != nil {
			report(err)
			continue
		}
		if cfg.OnResume != nil {
			cfg.OnResume(p.Name)
		}
	}
}
