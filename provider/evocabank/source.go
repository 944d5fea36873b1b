package evocabank

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Evocabank"

const hostname = "www.evoca.am"

const (
	cashSelector    = "#tab-1 > div > div.exchange > div > div.exchange__box > div > div > table > tbody > tr"
	noncashSelector = "#tab-2 > div > div.exchange > div > div.exchange__box > div > div > table > tbody > tr"
)

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
	return parseRows(doc.Find(cashSelector), s.Cash())
}

func (s *source) ParseNoncash(doc *goquery.Document) error {
	return parseRows(doc.Find(noncashSelector), s.Noncash())
}
