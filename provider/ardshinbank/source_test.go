package ardshinbank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const payload = `{
  "data": {
    "currencies": {
      "cash": [
        {"type": "USD", "buy": "386.5", "sell": "392"},
        {"type": "XAU", "buy": "n/a", "sell": "n/a"},
        {"type": "RUR", "buy": "4.7", "sell": "5.2"}
      ],
      "no_cash": [
        {"type": "USD", "buy": "387", "sell": "391.5"},
        {"type": "GBP", "buy": "475", "sell": "487"}
      ]
    }
  }
}`

func TestSource_FetchLatest(t *testing.T) {
	t.Parallel()

	type rate struct {
		segment   provider.Segment
		symbol    label.Symbol
		buy, sell float64
	}

	testCases := []struct {
		name     string
		payload  string
		err      error
		expected []rate
	}{
		{
			name:    "fetch_latest_string_numerics",
			payload: payload,
			expected: []rate{
				{segment: provider.Cash, symbol: label.USD, buy: 386.5, sell: 392},
				{segment: provider.Cash, symbol: label.RUB, buy: 4.7, sell: 5.2},
				{segment: provider.Noncash, symbol: label.USD, buy: 387, sell: 391.5},
				{segment: provider.Noncash, symbol: label.GBP, buy: 475, sell: 487},
			},
		},
		{
			name:    "fetch_latest_missing_no_cash",
			payload: `{"data": {"currencies": {"cash": []}}}`,
			err:     provider.ErrStructure,
		},
		{
			name:    "fetch_latest_numeric_buy",
			payload: `{"data": {"currencies": {"cash": [{"type": "USD", "buy": 386, "sell": "392"}], "no_cash": []}}}`,
			err:     provider.ErrStructure,
		},
		{
			name:    "fetch_latest_not_a_number",
			payload: `{"data": {"currencies": {"cash": [{"type": "EUR", "buy": "—", "sell": "415"}], "no_cash": []}}}`,
			err:     provider.ErrNumber,
		},
		{
			name:    "fetch_latest_not_finite",
			payload: `{"data": {"currencies": {"cash": [{"type": "USD", "buy": "NaN", "sell": "Inf"}], "no_cash": []}}}`,
			err:     provider.ErrNumber,
		},
		{
			name:    "fetch_latest_missing_type",
			payload: `{"data": {"currencies": {"cash": [{"buy": "1", "sell": "2"}], "no_cash": []}}}`,
			err:     provider.ErrStructure,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer srv.Close()

			u, err := url.Parse(srv.URL + "/currency")
			if err != nil {
				t.Fatalf("unable to parse url: %v", err)
			}

			source := NewSource(httputil.NewHTTPClient(srv.Client()))
			source.Bank = provider.NewBank(Name, *u)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			err = source.FetchLatest(ctx)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("fetch latest: %v", err)
			}

			for _, r := range tc.expected {
				got := source.Rates(r.segment).Get(r.symbol)
				if diff := cmp.Diff([]float64{r.buy, r.sell}, []float64{got.Buy().OrZero(), got.Sell().OrZero()}); diff != "" {
					t.Errorf("%s %s mismatch (-want, +got):\n%s", r.segment, r.symbol, diff)
				}
			}
		})
	}
}
