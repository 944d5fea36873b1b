package conversebank

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

const (
	headerRows   = 2
	currencyRows = 4
	nameColumn   = 0
)

type columns struct {
	buy  int
	sell int
}

func parseTable(rows *goquery.Selection, cols columns, set *provider.RateSet) error {
	if rows.Length() <= headerRows {
		return nil
	}

	rows = rows.Slice(headerRows, rows.Length())
	if rows.Length() > currencyRows {
		rows = rows.Slice(0, currencyRows)
	}

	for i := 0; i < rows.Length(); i++ {
		cells := rows.Eq(i).Children()

		name, err := provider.Text(cells.Eq(nameColumn), "currency cell")
		if err != nil {
			continue
		}

		symbol, err := label.Parse(name)
		if err != nil {
			continue
		}

		buy, err := parseCell(cells, cols.buy)
		if err != nil {
			return err
		}

		sell, err := parseCell(cells, cols.sell)
		if err != nil {
			return err
		}

		set.FillFrom(provider.NewRate(symbol, provider.Some(buy), provider.Some(sell)))
	}

	return nil
}

func parseCell(cells *goquery.Selection, column int) (float64, error) {
	text, err := provider.Text(cells.Eq(column), fmt.Sprintf("cell %d", column))
	if err != nil {
		return 0, err
	}

	return provider.ParseFloat(text)
}
