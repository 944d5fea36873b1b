package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrStructure is returned when a document does not have the layout the parser relies on
	ErrStructure = errors.New("unexpected document structure")
	// ErrNumber is returned when a rate value is present but is not a number
	ErrNumber = errors.New("rate value is not a number")
	// ErrTransport is returned when the document could not be downloaded
	ErrTransport = errors.New("transport failure")
)

// Source is an interface for getting data from a bank. Source takes care of receiving data
// and filling its cash and non-cash rate sets. FetchLatest is called once per process run
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// Name returns the display name of the bank
	Name() string
	// URL the document with exchange rates is fetched from
	URL() url.URL
	// Rates returns a copy of the rate set for the segment
	Rates(segment Segment) RateSet
	// FetchLatest downloads and parses the latest exchange rates
	FetchLatest(ctx context.Context) error
}

// TransportError marks err as a failure to download the document
func TransportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// StructureError marks a missing element or attribute described by what
func StructureError(what string) error {
	return fmt.Errorf("%w: %s", ErrStructure, what)
}
