package provider

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/robotomize/armbankrate/label"
)

type Segment uint8

const (
	Cash Segment = iota
	Noncash
)

func (s Segment) String() string {
	if s == Noncash {
		return "noncash"
	}

	return "cash"
}

type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}

	return "buy"
}

// Price is an optional rate value. The zero Price is absent
type Price struct {
	value float64
	valid bool
}

// Some returns a present Price
func Some(v float64) Price {
	return Price{value: v, valid: true}
}

func (p Price) Get() (float64, bool) {
	return p.value, p.valid
}

// OrZero returns the value, or 0 when the bank does not publish it
func (p Price) OrZero() float64 {
	return p.value
}

func (p Price) String() string {
	if !p.valid {
		return "-"
	}

	return strconv.FormatFloat(p.value, 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}

	return json.Marshal(p.value)
}

// Rate is the buy and sell price of a currency
type Rate struct {
	symbol label.Symbol
	buy    Price
	sell   Price
}

func NewRate(symbol label.Symbol, buy, sell Price) Rate {
	return Rate{symbol: symbol, buy: buy, sell: sell}
}

func (r Rate) Symbol() label.Symbol {
	return r.symbol
}

func (r Rate) Buy() Price {
	return r.buy
}

func (r Rate) Sell() Price {
	return r.sell
}

// Price returns the buy or sell price
func (r Rate) Price(side Side) Price {
	if side == Sell {
		return r.sell
	}

	return r.buy
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name label.Symbol `json:"name"`
		Buy  Price        `json:"buy"`
		Sell Price        `json:"sell"`
	}{Name: r.symbol, Buy: r.buy, Sell: r.sell})
}

// RateSet holds exactly one Rate per supported currency
type RateSet struct {
	usd Rate
	gbp Rate
	eur Rate
	rub Rate
}

func (s *RateSet) slot(symbol label.Symbol) *Rate {
	switch symbol {
	case label.USD:
		return &s.usd
	case label.GBP:
		return &s.gbp
	case label.EUR:
		return &s.eur
	case label.RUB:
		return &s.rub
	}

	return nil
}

// Get returns the rate of the currency. A slot that was never filled holds a rate
// without buy and sell prices
func (s RateSet) Get(symbol label.Symbol) Rate {
	r := s.slot(symbol)
	if r == nil {
		return Rate{symbol: symbol}
	}

	res := *r
	res.symbol = symbol

	return res
}

// FillFrom puts the rate into the slot of its currency, replacing the previous one
func (s *RateSet) FillFrom(r Rate) {
	if slot := s.slot(r.symbol); slot != nil {
		*slot = r
	}
}

func (s RateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		USD Rate `json:"usd"`
		GBP Rate `json:"gbp"`
		EUR Rate `json:"eur"`
		RUB Rate `json:"rub"`
	}{
		USD: s.Get(label.USD),
		GBP: s.Get(label.GBP),
		EUR: s.Get(label.EUR),
		RUB: s.Get(label.RUB),
	})
}

// Bank keeps the identity and the rate sets of one bank. Parsers embed it and fill
// the rate sets from FetchLatest
type Bank struct {
	name    string
	url     url.URL
	cash    RateSet
	noncash RateSet
}

func NewBank(name string, u url.URL) Bank {
	return Bank{name: name, url: u}
}

func (b *Bank) Name() string {
	return b.name
}

func (b *Bank) URL() url.URL {
	return b.url
}

func (b *Bank) Rates(segment Segment) RateSet {
	if segment == Noncash {
		return b.noncash
	}

	return b.cash
}

func (b *Bank) Cash() *RateSet {
	return &b.cash
}

func (b *Bank) Noncash() *RateSet {
	return &b.noncash
}

func (b *Bank) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cash    RateSet `json:"cash"`
		Noncash RateSet `json:"noncash"`
	}{Cash: b.cash, Noncash: b.noncash})
}
