package inecobank

import (
	"context"
	"net/url"

	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Inecobank"

const hostname = "www.inecobank.am"

var defaultURL = url.URL{Scheme: "https", Host: hostname, Path: "/api/rates/"}

var _ provider.Source = (*source)(nil)

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

// FetchLatest fills both segments from one payload, every item carries cash and cashless prices
func (s *source) FetchLatest(ctx context.Context) error {
	var resp response
	if err := provider.FetchJSON(ctx, s.client, s.URL(), &resp); err != nil {
		return err
	}

	if resp.Items == nil {
		return provider.StructureError("items")
	}

	for _, it := range *resp.Items {
		if it.Code == nil {
			return provider.StructureError("currency code")
		}

		if it.Cash == nil || it.Cashless == nil {
			return provider.StructureError("cash or cashless prices of " + *it.Code)
		}

		symbol, err := label.Parse(*it.Code)
		if err != nil {
			continue
		}

		s.Cash().FillFrom(provider.NewRate(symbol, it.Cash.Buy.price(), it.Cash.Sell.price()))
		s.Noncash().FillFrom(provider.NewRate(symbol, it.Cashless.Buy.price(), it.Cashless.Sell.price()))
	}

	return nil
}
