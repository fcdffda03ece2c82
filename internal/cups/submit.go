package cups

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// supportedExt is the fixed allow-list of printable input formats.
var supportedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".tiff": true,
	".tif":  true,
}

// PrintOptions configures one lp invocation.
type PrintOptions struct {
	// Copies below 2 are omitted from the command line.
	Copies int
	// Media is a paper-size label such as "A4" or "4x6".
	Media string
	// Grayscale maps to -o ColorModel=Gray.
	Grayscale bool
	// FitToPage maps to -o fit-to-page.
	FitToPage bool
	// Extra key=value pairs are passed through verbatim, unvalidated.
	Extra map[string]string
}

// args renders the deterministic lp argument list: destination, copies,
// media, color model, scaling, extra pairs in sorted key order, then path.
func (o PrintOptions) args(printer, path string) []string {
	args := []string{"-d", printer}
	if o.Copies > 1 {
		args = append(args, "-n", strconv.Itoa(o.Copies))
	}
	if o.Media != "" {
		args = append(args, "-o", "media="+o.Media)
	}
	if o.Grayscale {
		args = append(args, "-o", "ColorModel=Gray")
	}
	if o.FitToPage {
		args = append(args, "-o", "fit-to-page")
	}
	keys := make([]string, 0, len(o.Extra))
	for k := range o.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-o", k+"="+o.Extra[k])
	}
	return append(args, path)
}

var requestIDRe = regexp.MustCompile(`request id is \S+-(\d+)`)

// parseJobID pulls the numeric job id out of the lp acknowledgement text.
// When the text does not match, the trimmed raw output stands in as the id.
func parseJobID(out string) string {
	if m := requestIDRe.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return strings.TrimSpace(out)
}

func validateFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExt[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}

// PrintFile submits one file to the named printer and returns the job id.
// The printer-existence check and the lp call are not atomic: a printer
// removed in between surfaces as a raw lp failure instead of
// ErrPrinterNotFound.
func (c *Client) PrintFile(printer, path string, opts PrintOptions) (string, error) {
	if err := validateFile(path); err != nil {
		return "", err
	}
	if _, err := c.FindPrinter(printer); err != nil {
		return "", err
	}
	out, err := c.run.Run("lp", opts.args(printer, path)...)
	if err != nil {
		return "", fmt.Errorf("failed to submit print job: %w", err)
	}
	jobID := parseJobID(out)
	c.log.Info("submitted print job", "printer", printer, "file", path, "job", jobID)
	return jobID, nil
}

// PrintBytes stages an in-memory image to a temp file and submits it.
// The file always gets a .png extension even when the bytes are not PNG;
// CUPS sniffs the real type, the name only has to pass validation.
func (c *Client) PrintBytes(printer string, data []byte, opts PrintOptions) (string, error) {
	path, err := c.stageBuffer(data)
	if err != nil {
		return "", err
	}
	defer c.removeStaged(path)
	return c.PrintFile(printer, path, opts)
}

// PrintFirstAvailable submits a file to the default printer, or the first
// listed printer when no default is configured.
func (c *Client) PrintFirstAvailable(path string, opts PrintOptions) (string, string, error) {
	target, err := c.FirstAvailable()
	if err != nil {
		return "", "", err
	}
	jobID, err := c.PrintFile(target.Name, path, opts)
	return jobID, target.Name, err
}

func (c *Client) stageBuffer(data []byte) (string, error) {
	name := fmt.Sprintf("sticker-%d-%s.png", time.Now().UnixNano(), uuid.NewString()[:8])
	path := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to stage image buffer: %w", err)
	}
	c.log.Debug("staged image buffer", "path", path, "size", humanize.Bytes(uint64(len(data))))
	return path, nil
}

// removeStaged is best-effort: a leftover temp file is only worth a warning.
func (c *Client) removeStaged(path string) {
	if err := os.Remove(path); err != nil {
		c.log.Warn("failed to remove staged file", "path", path, "error", err)
	}
}
