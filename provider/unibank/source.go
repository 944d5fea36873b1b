package unibank

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Unibank"

const hostname = "www.unibank.am"

const (
	cashSelector    = "#Cash > div.pane__body > ul:nth-child(2) > li:nth-child(3n+1)"
	noncashSelector = "#Noncash > div.pane__body > ul > li:nth-child(3n+1)"
)

// only the first rows of the cash list hold the supported currencies
const cashRowsLimit = 4

var defaultURL = url.URL{Scheme: "https", Host: hostname, Path: "/"}

var (
	_ provider.Source         = (*source)(nil)
	_ provider.DocumentParser = (*source)(nil)
)

func NewSource(client httputil.SourceHTTPClient) *source {
	return &source{
		Bank:   provider.NewBank(Name, defaultURL),
		client: client,
	}
}

type source struct {
	provider.Bank
	client httputil.SourceHTTPClient
}

func (s *source) FetchLatest(ctx context.Context) error {
	return provider.FetchDocument(ctx, s.client, s.URL(), s)
}

func (s *source) ParseCash(doc *goquery.Document) error {
	return parseList(doc.Find(cashSelector), cashRowsLimit, s.Cash())
}

func (s *source) ParseNoncash(doc *goquery.Document) error {
	return parseList(doc.Find(noncashSelector), -1, s.Noncash())
}
