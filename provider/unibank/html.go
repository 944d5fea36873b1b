package unibank

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

// parseList walks name items of a rates list. Every name item is followed by the
// buy and the sell item, each wrapping its value in a child element
func parseList(items *goquery.Selection, limit int, set *provider.RateSet) error {
	if limit >= 0 && items.Length() > limit {
		items = items.Slice(0, limit)
	}

	for i := 0; i < items.Length(); i++ {
		item := items.Eq(i)

		name, err := provider.Text(item.Children().First(), "currency name")
		if err != nil {
			return err
		}

		symbol, err := label.Parse(name)
		if err != nil {
			continue
		}

		buyItem := item.Next()
		buy, err := parseValue(buyItem, "buy value")
		if err != nil {
			return err
		}

		sell, err := parseValue(buyItem.Next(), "sell value")
		if err != nil {
			return err
		}

		set.FillFrom(provider.NewRate(symbol, provider.Some(buy), provider.Some(sell)))
	}

	return nil
}

func parseValue(item *goquery.Selection, what string) (float64, error) {
	text, err := provider.Text(item.Children().First(), what)
	if err != nil {
		return 0, err
	}

	return provider.ParseFloat(text)
}
