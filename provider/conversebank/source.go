package conversebank

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Conversebank"

const hostname = "www.conversebank.am"

const rowSelector = "#main_static_content > table:nth-child(5) > tbody > tr"

var defaultURL = url.URL{Scheme: "https", Host: hostname, Path: "/ru/exchange-rate/"}

// cash and non-cash rates share the table rows and differ by cell columns
var (
	cashColumns    = columns{buy: 3, sell: 4}
	noncashColumns = columns{buy: 5, sell: 6}
)

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
	return parseTable(doc.Find(rowSelector), cashColumns, s.Cash())
}

func (s *source) ParseNoncash(doc *goquery.Document) error {
	return parseTable(doc.Find(rowSelector), noncashColumns, s.Noncash())
}
