package armbankrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/ardshinbank"
	"github.com/robotomize/armbankrate/provider/conversebank"
	"github.com/robotomize/armbankrate/provider/evocabank"
	"github.com/robotomize/armbankrate/provider/httputil"
	"github.com/robotomize/armbankrate/provider/idbank"
	"github.com/robotomize/armbankrate/provider/inecobank"
	"github.com/robotomize/armbankrate/provider/unibank"
)

var ErrBankNotFound = errors.New("invalid bank name")

// BankAll selects every known bank
const BankAll = "all"

const (
	BankArdshinbank  = "ardshinbank"
	BankConversebank = "conversebank"
	BankEvocabank    = "evocabank"
	BankIdbank       = "idbank"
	BankInecobank    = "inecobank"
	BankUnibank      = "unibank"
)

type constructor func(client httputil.SourceHTTPClient) provider.Source

// registry order is the order of BankAll
var registry = []struct {
	key string
	new constructor
}{
	{key: BankUnibank, new: func(c httputil.SourceHTTPClient) provider.Source { return unibank.NewSource(c) }},
	{key: BankConversebank, new: func(c httputil.SourceHTTPClient) provider.Source { return conversebank.NewSource(c) }},
	{key: BankIdbank, new: func(c httputil.SourceHTTPClient) provider.Source { return idbank.NewSource(c) }},
	{key: BankEvocabank, new: func(c httputil.SourceHTTPClient) provider.Source { return evocabank.NewSource(c) }},
	{key: BankInecobank, new: func(c httputil.SourceHTTPClient) provider.Source { return inecobank.NewSource(c) }},
	{key: BankArdshinbank, new: func(c httputil.SourceHTTPClient) provider.Source { return ardshinbank.NewSource(c) }},
}

// Banks returns the keys of all known banks
func Banks() []string {
	keys := make([]string, 0, len(registry))
	for _, r := range registry {
		keys = append(keys, r.key)
	}

	return keys
}

// Source returns a new source for the bank key, ignoring case
func (p *Parser) Source(name string) (provider.Source, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, r := range registry {
		if r.key == key {
			return r.new(p.client), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrBankNotFound, name)
}

// Sources resolves bank keys to new sources. Repeated keys are resolved once.
// BankAll selects every bank, the other names must still be known
func (p *Parser) Sources(names ...string) ([]provider.Source, error) {
	if len(names) == 0 {
		return p.Sources(BankAll)
	}

	all := false
	seen := make(map[string]struct{}, len(names))
	sources := make([]provider.Source, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), BankAll) {
			all = true
			continue
		}

		source, err := p.Source(name)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[source.Name()]; ok {
			continue
		}

		seen[source.Name()] = struct{}{}
		sources = append(sources, source)
	}

	// every name is validated before "all" expands
	if all {
		return p.Sources(Banks()...)
	}

	return sources, nil
}
