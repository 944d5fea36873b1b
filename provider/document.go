package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/internal/strutil"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Getter downloads a document
type Getter interface {
	Get(ctx context.Context, u url.URL) ([]byte, error)
}

// DocumentParser fills the rate sets of a bank from an HTML page that publishes
// both segments at once
type DocumentParser interface {
	ParseCash(doc *goquery.Document) error
	ParseNoncash(doc *goquery.Document) error
}

// FetchDocument downloads the page once with GET, then hands it to the cash
// and the non-cash parser in turn
func FetchDocument(ctx context.Context, client Getter, u url.URL, p DocumentParser) error {
	b, err := client.Get(ctx, u)
	if err != nil {
		return TransportError(err)
	}

	doc, err := ParseDocument(b)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	if err := p.ParseCash(doc); err != nil {
		return fmt.Errorf("parse cash: %w", err)
	}

	if err := p.ParseNoncash(doc); err != nil {
		return fmt.Errorf("parse noncash: %w", err)
	}

	return nil
}

// ParseDocument decodes the page to UTF-8 according to its meta tags and builds a goquery document
func ParseDocument(b []byte) (*goquery.Document, error) {
	r, err := charset.NewReader(bytes.NewReader(b), "")
	if err != nil {
		return nil, fmt.Errorf("%w: charset: %v", ErrStructure, err)
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: html parse: %v", ErrStructure, err)
	}

	return goquery.NewDocumentFromNode(root), nil
}

// ParseFloat parses a rate value, ignoring surrounding spaces
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strutil.RemoveExtraSpaces(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}

	return v, nil
}

// Text returns the space-normalized text of the selection. An empty selection
// is a structural failure
func Text(sel *goquery.Selection, what string) (string, error) {
	if sel.Length() == 0 {
		return "", StructureError(what)
	}

	return strutil.RemoveExtraSpaces(sel.Text()), nil
}
