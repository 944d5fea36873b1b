package idbank

import (
	"context"
	"fmt"
	"net/url"

	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const Name = "Idbank"

const hostname = "idbank.am"

const cellSelector = `#\.default > div.m-exchange > div.m-exchange__table > div > .m-exchange__table-cell:nth-child(1)`

// the rates page renders one segment per request, chosen by a form field
const (
	rateTypeField   = "RATE_TYPE"
	cashRateType    = "CASH"
	noncashRateType = "NO_CASH"
)

// the cash table lists the supported currencies and a precious metal row first
const cashRowsLimit = 5

var defaultURL = url.URL{Scheme: "https", Host: hostname, Path: "/en/rates/"}

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

// FetchLatest requests both segments before parsing either of them
func (s *source) FetchLatest(ctx context.Context) error {
	cash, err := s.fetch(ctx, cashRateType)
	if err != nil {
		return err
	}

	noncash, err := s.fetch(ctx, noncashRateType)
	if err != nil {
		return err
	}

	cashDoc, err := provider.ParseDocument(cash)
	if err != nil {
		return fmt.Errorf("parse cash document: %w", err)
	}

	if err := parseCells(cashDoc.Find(cellSelector), cashRowsLimit, s.Cash()); err != nil {
		return fmt.Errorf("parse cash: %w", err)
	}

	noncashDoc, err := provider.ParseDocument(noncash)
	if err != nil {
		return fmt.Errorf("parse noncash document: %w", err)
	}

	if err := parseCells(noncashDoc.Find(cellSelector), -1, s.Noncash()); err != nil {
		return fmt.Errorf("parse noncash: %w", err)
	}

	return nil
}

func (s *source) fetch(ctx context.Context, rateType string) ([]byte, error) {
	b, err := s.client.PostForm(ctx, s.URL(), url.Values{rateTypeField: {rateType}})
	if err != nil {
		return nil, provider.TransportError(fmt.Errorf("%s rates: %w", rateType, err))
	}

	return b, nil
}
