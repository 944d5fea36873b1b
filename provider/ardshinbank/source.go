package ardshinbank

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Ardshinbank"

const hostname = "website-api.ardshinbank.am"

var defaultURL = url.URL{Scheme: "https", Host: hostname, Path: "/currency"}

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

func (s *source) FetchLatest(ctx context.Context) error {
	var resp response
	if err := provider.FetchJSON(ctx, s.client, s.URL(), &resp); err != nil {
		return err
	}

	currencies := resp.Data.Currencies
	if currencies.Cash == nil || currencies.NoCash == nil {
		return provider.StructureError("data.currencies cash or no_cash")
	}

	if err := fill(*currencies.Cash, s.Cash()); err != nil {
		return fmt.Errorf("parse cash: %w", err)
	}

	if err := fill(*currencies.NoCash, s.Noncash()); err != nil {
		return fmt.Errorf("parse noncash: %w", err)
	}

	return nil
}
