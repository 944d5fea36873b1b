package armbankrate

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

var ErrSortKey = errors.New("invalid sort key")

// SortKey selects the rate banks are ordered by
type SortKey struct {
	Segment provider.Segment
	Symbol  label.Symbol
	Side    provider.Side
}

// ParseSortKey parses keys like "usd-buy" or "RUR-sell"
func ParseSortKey(segment provider.Segment, s string) (SortKey, error) {
	code, side, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return SortKey{}, fmt.Errorf("%w: %s", ErrSortKey, s)
	}

	symbol, err := label.Parse(code)
	if err != nil {
		return SortKey{}, fmt.Errorf("%w: %w", ErrSortKey, err)
	}

	key := SortKey{Segment: segment, Symbol: symbol}
	switch strings.ToLower(side) {
	case "buy":
		key.Side = provider.Buy
	case "sell":
		key.Side = provider.Sell
	default:
		return SortKey{}, fmt.Errorf("%w: unknown side %s", ErrSortKey, side)
	}

	return key, nil
}

func (k SortKey) String() string {
	return fmt.Sprintf("%s %s-%s", k.Segment, strings.ToLower(k.Symbol.String()), k.Side)
}

func (k SortKey) value(s provider.Source) float64 {
	return s.Rates(k.Segment).Get(k.Symbol).Price(k.Side).OrZero()
}

// Sort orders sources by the key rate, highest first. Banks that do not publish the rate
// count as 0. Equal rates keep their relative order
func Sort(sources []provider.Source, key SortKey) {
	sort.SliceStable(sources, func(i, j int) bool {
		return totalCompare(key.value(sources[i]), key.value(sources[j])) > 0
	})
}

// totalCompare orders floats by the IEEE 754 totalOrder predicate:
// -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
func totalCompare(a, b float64) int {
	x, y := totalKey(a), totalKey(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

func totalKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	return bits ^ int64(uint64(bits>>63)>>1)
}
