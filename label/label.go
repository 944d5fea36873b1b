// Package label contains the currencies tracked by the armbankrate parsers.
package label

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCurrencyNotFound = errors.New("currency not found")

// Symbol is a canonical three-letter currency code
type Symbol string

const (
	USD Symbol = "USD"
	GBP Symbol = "GBP"
	EUR Symbol = "EUR"
	RUB Symbol = "RUB"
)

// Symbols lists every supported currency in display order
var Symbols = []Symbol{USD, GBP, EUR, RUB}

// aliases maps historical codes that some banks still publish
var aliases = map[string]Symbol{
	"RUR": RUB,
}

func (s Symbol) String() string {
	return string(s)
}

// Parse resolves a raw currency code, ignoring case and surrounding spaces.
// The historical code RUR resolves to RUB
func Parse(code string) (Symbol, error) {
	upper := strings.ToUpper(strings.TrimSpace(code))

	switch sym := Symbol(upper); sym {
	case USD, GBP, EUR, RUB:
		return sym, nil
	}

	if sym, ok := aliases[upper]; ok {
		return sym, nil
	}

	return "", fmt.Errorf("%w: %s", ErrCurrencyNotFound, upper)
}
