package cups

import (
	"fmt"
	"regexp"
	"strings"
)

// Printer is one destination known to the CUPS scheduler. Records are built
// fresh on every query and never cached; the name is the only identity.
type Printer struct {
	Name        string `json:"name"`
	URI         string `json:"uri"`
	Status      string `json:"status"`
	IsDefault   bool   `json:"is_default"`
	IsUSB       bool   `json:"is_usb"`
	Description string `json:"description,omitempty"`
}

var (
	printerLineRe = regexp.MustCompile(`^printer (\S+)\s*(.*)$`)
	defaultLineRe = regexp.MustCompile(`^system default destination:\s*(\S+)`)
	deviceLineRe  = regexp.MustCompile(`^device for (\S+):\s*(.*)$`)
)

// Printers lists the current destinations by cross-referencing the
// name/status report (lpstat -p -d) with the name/device report (lpstat -v).
// Either command failing yields a single wrapped error, never partial results.
func (c *Client) Printers() ([]Printer, error) {
	statusOut, err := c.run.Run("lpstat", "-p", "-d")
	if err != nil {
		return nil, fmt.Errorf("failed to list printers: %w", err)
	}
	deviceOut, err := c.run.Run("lpstat", "-v")
	if err != nil {
		return nil, fmt.Errorf("failed to list printer devices: %w", err)
	}

	uris := make(map[string]string)
	for _, line := range strings.Split(deviceOut, "\n") {
		if m := deviceLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			uris[m[1]] = strings.TrimSpace(m[2])
		}
	}

	var printers []Printer
	var defaultName string
	for _, line := range strings.Split(statusOut, "\n") {
		line = strings.TrimSpace(line)
		if m := defaultLineRe.FindStringSubmatch(line); m != nil {
			defaultName = m[1]
			continue
		}
		m := printerLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		uri := uris[m[1]]
		printers = append(printers, Printer{
			Name:   m[1],
			URI:    uri,
			Status: strings.TrimSpace(m[2]),
			IsUSB:  strings.Contains(strings.ToLower(uri), "usb"),
		})
	}

	// lpstat prints at most one default-destination line
	for i := range printers {
		if printers[i].Name == defaultName {
			printers[i].IsDefault = true
			break
		}
	}

	return printers, nil
}

// USBPrinters filters the directory down to USB-attached destinations.
func (c *Client) USBPrinters() ([]Printer, error) {
	printers, err := c.Printers()
	if err != nil {
		return nil, err
	}
	var usb []Printer
	for _, p := range printers {
		if p.IsUSB {
			usb = append(usb, p)
		}
	}
	return usb, nil
}

// FindPrinter looks up one destination by name from a fresh directory query.
func (c *Client) FindPrinter(name string) (*Printer, error) {
	printers, err := c.Printers()
	if err != nil {
		return nil, err
	}
	for i := range printers {
		if printers[i].Name == name {
			return &printers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
}

// FirstAvailable picks the default destination if one exists, otherwise the
// first listed destination.
func (c *Client) FirstAvailable() (*Printer, error) {
	printers, err := c.Printers()
	if err != nil {
		return nil, err
	}
	if len(printers) == 0 {
		return nil, ErrNoPrinters
	}
	for i := range printers {
		if printers[i].IsDefault {
			return &printers[i], nil
		}
	}
	return &printers[0], nil
}
