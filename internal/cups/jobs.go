package cups

import (
	"fmt"
	"strings"
)

// JobStatus returns the raw queue listing, optionally scoped to one job id.
func (c *Client) JobStatus(jobID string) (string, error) {
	args := []string{"-o"}
	if jobID != "" {
		args = append(args, jobID)
	}
	out, err := c.run.Run("lpstat", args...)
	if err != nil {
		return "", fmt.Errorf("failed to query job status: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// CancelJob asks CUPS to cancel the job. Success only means the cancel
// command itself succeeded, not that the job actually stopped.
func (c *Client) CancelJob(jobID string) error {
	if _, err := c.run.Run("cancel", jobID); err != nil {
		return fmt.Errorf("failed to cancel job %s: %w", jobID, err)
	}
	return nil
}
