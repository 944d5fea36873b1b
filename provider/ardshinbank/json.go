package ardshinbank

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

type response struct {
	Data struct {
		Currencies struct {
			Cash   *[]item `json:"cash"`
			NoCash *[]item `json:"no_cash"`
		} `json:"currencies"`
	} `json:"data"`
}

// item prices are published as strings, e.g. {"type":"USD","buy":"386.5","sell":"392"}
type item struct {
	Type *string         `json:"type"`
	Buy  json.RawMessage `json:"buy"`
	Sell json.RawMessage `json:"sell"`
}

func fill(items []item, set *provider.RateSet) error {
	for _, it := range items {
		if it.Type == nil {
			return provider.StructureError("currency type")
		}

		symbol, err := label.Parse(*it.Type)
		if err != nil {
			continue
		}

		buy, err := parsePrice(it.Buy, "buy")
		if err != nil {
			return err
		}

		sell, err := parsePrice(it.Sell, "sell")
		if err != nil {
			return err
		}

		set.FillFrom(provider.NewRate(symbol, provider.Some(buy), provider.Some(sell)))
	}

	return nil
}

func parsePrice(raw json.RawMessage, what string) (float64, error) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return 0, provider.StructureError(what + " is not a string")
	}

	v, err := provider.ParseFloat(s)
	if err != nil {
		return 0, err
	}

	// the API publishes plain decimals, NaN and Inf mean a broken payload
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", provider.ErrNumber, what, s)
	}

	return v, nil
}
