package inecobank

import (
	"bytes"
	"encoding/json"

	"github.com/robotomize/armbankrate/provider"
)

type response struct {
	Items *[]item `json:"items"`
}

type item struct {
	Code     *string `json:"code"`
	Cash     *prices `json:"cash"`
	Cashless *prices `json:"cashless"`
}

type prices struct {
	Buy  number `json:"buy"`
	Sell number `json:"sell"`
}

var _ json.Unmarshaler = (*number)(nil)

// number keeps JSON numbers only. null, strings and other values leave it absent
type number struct {
	value float64
	valid bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	var v float64
	if bytes.Equal(b, []byte("null")) || json.Unmarshal(b, &v) != nil {
		*n = number{}
		return nil
	}

	*n = number{value: v, valid: true}

	return nil
}

func (n number) price() provider.Price {
	if !n.valid {
		return provider.Price{}
	}

	return provider.Some(n.value)
}
