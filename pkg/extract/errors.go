package extract

import "fmt"

// Per-file error taxonomy. The orchestrator absorbs all of these into failed
// ExtractedContent records; none of them abort a batch.

// UnsupportedFormatError names the declared content type the dispatcher
// could not map to an extractor.
type UnsupportedFormatError struct {
	DeclaredType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.DeclaredType)
}

// FetchError wraps a failed byte fetch for a location.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError wraps a format-specific parser failure.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s content: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
