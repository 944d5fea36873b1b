package evocabank

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

const maxRows = 4

const (
	buyColumn  = 1
	sellColumn = 2
)

// parseRows reads table rows of the form
//
//	<tr><td><img><span>USD</span></td><td>386</td><td>392</td></tr>
func parseRows(rows *goquery.Selection, set *provider.RateSet) error {
	if rows.Length() > maxRows {
		rows = rows.Slice(0, maxRows)
	}

	for i := 0; i < rows.Length(); i++ {
		row := rows.Eq(i)

		name, err := provider.Text(row.Find("span").First(), "currency span")
		if err != nil {
			return err
		}

		symbol, err := label.Parse(name)
		if err != nil {
			continue
		}

		cells := row.Children()

		buy, err := parseCell(cells.Eq(buyColumn), "buy cell")
		if err != nil {
			return err
		}

		sell, err := parseCell(cells.Eq(sellColumn), "sell cell")
		if err != nil {
			return err
		}

		set.FillFrom(provider.NewRate(symbol, provider.Some(buy), provider.Some(sell)))
	}

	return nil
}

func parseCell(cell *goquery.Selection, what string) (float64, error) {
	text, err := provider.Text(cell, what)
	if err != nil {
		return 0, err
	}

	return provider.ParseFloat(text)
}
