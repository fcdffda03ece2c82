package cups

import (
	"fmt"
	"regexp"
	"strings"
)

// Capability is one configurable printer option as reported by lpoptions -l,
// e.g. PageSize with its choices and marked default.
type Capability struct {
	Option  string   `json:"option"`
	Label   string   `json:"label"`
	Default string   `json:"default,omitempty"`
	Choices []string `json:"choices"`
}

// Capabilities describes one printer's configurable options.
type Capabilities struct {
	Description string       `json:"description,omitempty"`
	Options     []Capability `json:"options"`
}

// Format: "PageSize/Media Size: *Letter A4 Legal 4x6"
var optionLineRe = regexp.MustCompile(`^([^/:]+)/([^:]+):\s*(.*)$`)

// PrinterCapabilities queries the configurable options of one printer.
// Capabilities only change when a driver is reconfigured, so results are
// cached; directory records never are.
func (c *Client) PrinterCapabilities(name string) (*Capabilities, error) {
	key := "caps:" + name
	if cached := c.caps.Get(key); cached != nil {
		return cached.(*Capabilities), nil
	}

	if _, err := c.FindPrinter(name); err != nil {
		return nil, err
	}

	out, err := c.run.Run("lpoptions", "-p", name, "-l")
	if err != nil {
		return nil, fmt.Errorf("failed to query printer options: %w", err)
	}

	caps := &Capabilities{}
	for _, line := range strings.Split(out, "\n") {
		m := optionLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		opt := Capability{
			Option: strings.TrimSpace(m[1]),
			Label:  strings.TrimSpace(m[2]),
		}
		for _, choice := range strings.Fields(m[3]) {
			if trimmed, ok := strings.CutPrefix(choice, "*"); ok {
				opt.Default = trimmed
				choice = trimmed
			}
			opt.Choices = append(opt.Choices, choice)
		}
		caps.Options = append(caps.Options, opt)
	}

	// Description comes from the long status listing
	if longOut, err := c.run.Run("lpstat", "-l", "-p", name); err == nil {
		for _, line := range strings.Split(longOut, "\n") {
			if d, ok := strings.CutPrefix(strings.TrimSpace(line), "Description:"); ok {
				caps.Description = strings.TrimSpace(d)
				break
			}
		}
	}

	c.caps.Set(key, caps)
	return caps, nil
}
