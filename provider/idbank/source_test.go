package idbank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const cashPage = `<!DOCTYPE html>
<html><body>
<div id=".default">
    <div class="m-exchange">
        <div class="m-exchange__table">
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">Currency</div>
                <div class="m-exchange__table-cell">Buy</div>
                <div class="m-exchange__table-cell">Sell</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell"><img src="/usd.svg"> 1 USD</div>
                <div class="m-exchange__table-cell">386.00</div>
                <div class="m-exchange__table-cell">392.50</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">1 RUR</div>
                <div class="m-exchange__table-cell">4.70</div>
                <div class="m-exchange__table-cell">-</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">1 XAU</div>
                <div class="m-exchange__table-cell">28000</div>
                <div class="m-exchange__table-cell">30000</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">1 EUR</div>
                <div class="m-exchange__table-cell">403</div>
                <div class="m-exchange__table-cell">415</div>
            </div>
        </div>
    </div>
</div>
</body></html>`

const noncashPage = `<!DOCTYPE html>
<html><body>
<div id=".default">
    <div class="m-exchange">
        <div class="m-exchange__table">
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">Currency</div>
                <div class="m-exchange__table-cell">Buy</div>
                <div class="m-exchange__table-cell">Sell</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">1 USD</div>
                <div class="m-exchange__table-cell">387</div>
                <div class="m-exchange__table-cell">391</div>
            </div>
            <div class="m-exchange__table-row">
                <div class="m-exchange__table-cell">1 GBP</div>
                <div class="m-exchange__table-cell">474.5</div>
                <div class="m-exchange__table-cell">486</div>
            </div>
        </div>
    </div>
</div>
</body></html>`

const brokenPage = `<!DOCTYPE html>
<html><body>
<div id=".default">
    <div class="m-exchange">
        <div class="m-exchange__table">
            <div class="m-exchange__table-row"><div class="m-exchange__table-cell">Currency</div></div>
            <div class="m-exchange__table-row"><div class="m-exchange__table-cell">1 USD</div></div>
        </div>
    </div>
</div>
</body></html>`

func TestSource_FetchLatest(t *testing.T) {
	t.Parallel()

	type rate struct {
		symbol    label.Symbol
		buy, sell float64
	}

	testCases := []struct {
		name     string
		pages    map[string]string
		requests int32
		err      error
		cash     []rate
		noncash  []rate
	}{
		{
			name:     "fetch_latest_two_requests",
			pages:    map[string]string{cashRateType: cashPage, noncashRateType: noncashPage},
			requests: 2,
			cash: []rate{
				{symbol: label.USD, buy: 386, sell: 392.5},
				{symbol: label.RUB, buy: 4.7, sell: 0},
				{symbol: label.EUR, buy: 403, sell: 415},
			},
			noncash: []rate{
				{symbol: label.USD, buy: 387, sell: 391},
				{symbol: label.GBP, buy: 474.5, sell: 486},
			},
		},
		{
			name:     "fetch_latest_noncash_unavailable",
			pages:    map[string]string{cashRateType: cashPage},
			requests: 2,
			err:      provider.ErrTransport,
		},
		{
			name:     "fetch_latest_missing_value_cells",
			pages:    map[string]string{cashRateType: brokenPage, noncashRateType: noncashPage},
			requests: 2,
			err:      provider.ErrStructure,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var requests int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&requests, 1)
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}

				page, ok := tc.pages[r.FormValue(rateTypeField)]
				if !ok {
					w.WriteHeader(http.StatusNotFound)
					return
				}

				_, _ = w.Write([]byte(page))
			}))
			defer srv.Close()

			u, err := url.Parse(srv.URL + "/en/rates/")
			if err != nil {
				t.Fatalf("unable to parse url: %v", err)
			}

			source := NewSource(httputil.NewHTTPClient(srv.Client()))
			source.Bank = provider.NewBank(Name, *u)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			err = source.FetchLatest(ctx)
			if diff := cmp.Diff(tc.requests, atomic.LoadInt32(&requests)); diff != "" {
				t.Errorf("requests mismatch (-want, +got):\n%s", diff)
			}

			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}

				if _, ok := source.Rates(provider.Cash).Get(label.USD).Buy().Get(); ok && errors.Is(err, provider.ErrTransport) {
					t.Errorf("nothing must be parsed before both segments are downloaded")
				}

				return
			}

			if err != nil {
				t.Fatalf("fetch latest: %v", err)
			}

			for _, r := range tc.cash {
				got := source.Rates(provider.Cash).Get(r.symbol)
				if diff := cmp.Diff([]float64{r.buy, r.sell}, []float64{got.Buy().OrZero(), got.Sell().OrZero()}); diff != "" {
					t.Errorf("cash %s mismatch (-want, +got):\n%s", r.symbol, diff)
				}
			}

			for _, r := range tc.noncash {
				got := source.Rates(provider.Noncash).Get(r.symbol)
				if diff := cmp.Diff([]float64{r.buy, r.sell}, []float64{got.Buy().OrZero(), got.Sell().OrZero()}); diff != "" {
					t.Errorf("noncash %s mismatch (-want, +got):\n%s", r.symbol, diff)
				}
			}
		})
	}
}
