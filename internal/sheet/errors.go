package sheet

import "errors"

var (
	// ErrDataUnavailable indicates the source file is missing or unreadable.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrUnsupportedFormat indicates a file extension the viewer cannot read.
	ErrUnsupportedFormat = errors.New("unsupported table format")
	// ErrSheetNotFound indicates a requested workbook sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
)
