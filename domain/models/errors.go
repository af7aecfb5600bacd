package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedHref is returned for hrefs with a scheme other than http or https.
	ErrUnsupportedHref = errors.New("unsupported href scheme")

	// ErrNoFileName is returned for links without a final path segment to name the file after.
	ErrNoFileName = errors.New("no file name in url path")

	// ErrUnexpectedStatus is returned when a server answers with a non 2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// URLParseError is a malformed url.
type URLParseError struct {
	URL string
	Err error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("parsing url %q: %v", e.URL, e.Err)
}

func (e *URLParseError) Unwrap() error { return e.Err }

// NetworkError is a failed request or transfer.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DocumentParseError is a page body that could not be parsed as HTML.
type DocumentParseError struct {
	URL string
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("parsing document %s: %v", e.URL, e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// IOError is a failure creating or writing a downloaded file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// BatchError wraps the first failure observed in a batch.
type BatchError struct {
	Link string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("downloading files: %s: %v", e.Link, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
