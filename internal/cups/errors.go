package cups

import "errors"

var (
	// ErrFileNotFound means the input path does not exist or is unreadable.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat means the input extension is outside the allow-list.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrPrinterNotFound means the named printer is absent from the directory.
	ErrPrinterNotFound = errors.New("printer not found")

	// ErrNoPrinters means the directory returned an empty printer list.
	ErrNoPrinters = errors.New("no printers found")
)
