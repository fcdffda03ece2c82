package cups

import (
	"errors"
	"testing"
)

func TestPrintersCrossReferencesReports(t *testing.T) {
	client := newFakeClient(&fakeRunner{})

	printers, err := client.Printers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(printers) != 2 {
		t.Fatalf("expected 2 printers, got %d", len(printers))
	}

	canon := printers[0]
	if canon.Name != "Canon_TS3300" {
		t.Fatalf("unexpected name %q", canon.Name)
	}
	if canon.URI != "usb://Canon/TS3300?serial=1AB2C3" {
		t.Fatalf("unexpected URI %q", canon.URI)
	}
	if !canon.IsUSB {
		t.Fatalf("expected Canon to be USB")
	}
	if canon.Status != "is idle.  enabled since Tue 12 Aug 2025" {
		t.Fatalf("unexpected status %q", canon.Status)
	}

	office := printers[1]
	if office.IsUSB {
		t.Fatalf("expected Office_Laser to not be USB")
	}
	if office.IsDefault {
		t.Fatalf("expected Office_Laser to not be default")
	}
}

func TestPrintersDefaultFlagSetExactlyOnce(t *testing.T) {
	client := newFakeClient(&fakeRunner{})

	printers, err := client.Printers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := 0
	for _, p := range printers {
		if p.IsDefault {
			defaults++
			if p.Name != "Canon_TS3300" {
				t.Fatalf("wrong default printer %q", p.Name)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestUSBFlagIsCaseInsensitive(t *testing.T) {
	client := newFakeClient(&fakeRunner{outputs: map[string]string{
		"lpstat -p -d": "printer Label_Maker is idle.\n",
		"lpstat -v":    "device for Label_Maker: USB://Dymo/LabelWriter\n",
	}})

	printers, err := client.Printers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(printers) != 1 || !printers[0].IsUSB {
		t.Fatalf("expected uppercase USB URI to set the flag: %+v", printers)
	}
}

func TestPrintersCommandFailureReturnsNoPartialResults(t *testing.T) {
	for _, failing := range []string{"lpstat -p -d", "lpstat -v"} {
		client := newFakeClient(&fakeRunner{
			errs: map[string]error{failing: errors.New("scheduler is not running")},
		})
		printers, err := client.Printers()
		if err == nil {
			t.Fatalf("expected error when %q fails", failing)
		}
		if printers != nil {
			t.Fatalf("expected no partial results, got %+v", printers)
		}
	}
}

func TestPrintersToleratesMissingDeviceLine(t *testing.T) {
	client := newFakeClient(&fakeRunner{outputs: map[string]string{
		"lpstat -p -d": "printer Orphan is idle.\n",
		"lpstat -v":    "",
	}})

	printers, err := client.Printers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(printers) != 1 || printers[0].URI != "" {
		t.Fatalf("expected orphan printer with empty URI, got %+v", printers)
	}
}

func TestUSBPrintersFiltersDirectory(t *testing.T) {
	client := newFakeClient(&fakeRunner{})

	usb, err := client.USBPrinters()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(usb) != 1 || usb[0].Name != "Canon_TS3300" {
		t.Fatalf("unexpected USB list: %+v", usb)
	}
}

func TestFindPrinterMissing(t *testing.T) {
	client := newFakeClient(&fakeRunner{})

	_, err := client.FindPrinter("Basement_Plotter")
	if !errors.Is(err, ErrPrinterNotFound) {
		t.Fatalf("expected ErrPrinterNotFound, got %v", err)
	}
}

func TestFirstAvailablePrefersDefault(t *testing.T) {
	// Default is listed after another printer; it must still win.
	client := newFakeClient(&fakeRunner{outputs: map[string]string{
		"lpstat -p -d": "printer Office_Laser is idle.\nprinter Canon_TS3300 is idle.\nsystem default destination: Canon_TS3300\n",
		"lpstat -v":    deviceReport,
	}})

	target, err := client.FirstAvailable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Name != "Canon_TS3300" {
		t.Fatalf("expected default printer, got %q", target.Name)
	}
}

func TestFirstAvailableFallsBackToFirstListed(t *testing.T) {
	client := newFakeClient(&fakeRunner{outputs: map[string]string{
		"lpstat -p -d": "printer Office_Laser is idle.\nprinter Canon_TS3300 is idle.\n",
		"lpstat -v":    deviceReport,
	}})

	target, err := client.FirstAvailable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Name != "Office_Laser" {
		t.Fatalf("expected first listed printer, got %q", target.Name)
	}
}

func TestFirstAvailableEmptyDirectory(t *testing.T) {
	client := newFakeClient(&fakeRunner{outputs: map[string]string{
		"lpstat -p -d": "",
		"lpstat -v":    "",
	}})

	_, err := client.FirstAvailable()
	if !errors.Is(err, ErrNoPrinters) {
		t.Fatalf("expected ErrNoPrinters, got %v", err)
	}
}
