package render

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
	"golang.org/x/text/language"
)

type bank struct {
	provider.Bank
}

func (b *bank) FetchLatest(context.Context) error {
	return nil
}

func TestPrinter_Table(t *testing.T) {
	t.Parallel()

	ineco := &bank{Bank: provider.NewBank("Inecobank", url.URL{Scheme: "https", Host: "www.inecobank.am"})}
	ineco.Cash().FillFrom(provider.NewRate(label.USD, provider.Some(388), provider.Some(393)))
	ineco.Cash().FillFrom(provider.NewRate(label.RUB, provider.Some(4.6), provider.Some(5.2)))
	ineco.Noncash().FillFrom(provider.NewRate(label.USD, provider.Some(389), provider.Price{}))

	uni := &bank{Bank: provider.NewBank("Unibank", url.URL{Scheme: "https", Host: "www.unibank.am"})}
	uni.Cash().FillFrom(provider.NewRate(label.USD, provider.Some(386), provider.Some(392)))
	uni.Cash().FillFrom(provider.NewRate(label.EUR, provider.Some(402), provider.Some(415)))

	row := func(cells ...interface{}) string {
		return fmt.Sprintf("%-11s%-11s%-11s%-11s%s\n", cells...)
	}

	testCases := []struct {
		name     string
		segment  provider.Segment
		expected string
	}{
		{
			name:    "table_cash",
			segment: provider.Cash,
			expected: "CASH\n" +
				row("Bank", "USD", "EUR", "RUB", "GBP") +
				row("Inecobank", "388 / 393", "0 / 0", "4.6 / 5.2", "0 / 0") +
				row("Unibank", "386 / 392", "402 / 415", "0 / 0", "0 / 0"),
		},
		{
			name:    "table_noncash",
			segment: provider.Noncash,
			expected: "NON-CASH\n" +
				fmt.Sprintf("%-11s%-9s%-7s%-7s%s\n", "Bank", "USD", "EUR", "RUB", "GBP") +
				fmt.Sprintf("%-11s%-9s%-7s%-7s%s\n", "Inecobank", "389 / 0", "0 / 0", "0 / 0", "0 / 0") +
				fmt.Sprintf("%-11s%-9s%-7s%-7s%s\n", "Unibank", "0 / 0", "0 / 0", "0 / 0", "0 / 0"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := New(language.English).Table(&buf, tc.segment, []provider.Source{ineco, uni}); err != nil {
				t.Fatalf("table: %v", err)
			}

			if diff := cmp.Diff(tc.expected, buf.String()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPrinter_Cell(t *testing.T) {
	t.Parallel()

	p := New(language.English)

	got := p.Cell(provider.NewRate(label.GBP, provider.Some(1234.5), provider.Price{}))
	if diff := cmp.Diff("1,234.5 / 0", got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
