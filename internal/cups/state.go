package cups

import (
	"fmt"
	"strings"
)

// statusEnabled classifies the free-form lpstat status text. CUPS does not
// expose a closed state vocabulary here, so "ready" is defined negatively:
// the text carries neither "disabled" nor "paused".
func statusEnabled(status string) bool {
	s := strings.ToLower(status)
	return !strings.Contains(s, "disabled") && !strings.Contains(s, "paused")
}

// IsEnabled reports whether the named printer is currently accepting jobs.
func (c *Client) IsEnabled(name string) (bool, error) {
	p, err := c.FindPrinter(name)
	if err != nil {
		return false, err
	}
	return statusEnabled(p.Status), nil
}

// Resume re-enables a paused printer and marks it as accepting jobs.
// Both commands must succeed.
func (c *Client) Resume(name string) error {
	if _, err := c.run.Run("cupsenable", name); err != nil {
		return fmt.Errorf("failed to enable printer %s: %w", name, err)
	}
	if _, err := c.run.Run("cupsaccept", name); err != nil {
		return fmt.Errorf("failed to accept jobs on printer %s: %w", name, err)
	}
	return nil
}

// EnsureReady checks the named printer and, when autoResume is set, brings a
// paused printer back. The returned message describes what happened.
func (c *Client) EnsureReady(name string, autoResume bool) (string, error) {
	enabled, err := c.IsEnabled(name)
	if err != nil {
		return "", err
	}
	if enabled {
		return fmt.Sprintf("printer %s is ready", name), nil
	}
	if !autoResume {
		return fmt.Sprintf("printer %s is paused", name), nil
	}
	if err := c.Resume(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("printer %s was paused and has been resumed", name), nil
}
