package idbank

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
)

var (
	// currency cells read like "1 USD"
	nameRe  = regexp.MustCompile(`\d (\w{3})`)
	valueRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

const headerRows = 1

// parseCells reads the first cell of every table row. The buy and the sell values are
// the following sibling cells. A cell without a number yields 0
func parseCells(cells *goquery.Selection, limit int, set *provider.RateSet) error {
	if cells.Length() <= headerRows {
		return nil
	}

	cells = cells.Slice(headerRows, cells.Length())
	if limit >= 0 && cells.Length() > limit {
		cells = cells.Slice(0, limit)
	}

	for i := 0; i < cells.Length(); i++ {
		cell := cells.Eq(i)

		match := nameRe.FindStringSubmatch(cell.Text())
		if match == nil {
			continue
		}

		symbol, err := label.Parse(match[1])
		if err != nil {
			continue
		}

		buyCell := cell.Next()
		buy, err := parseValue(buyCell, "buy cell")
		if err != nil {
			return err
		}

		sell, err := parseValue(buyCell.Next(), "sell cell")
		if err != nil {
			return err
		}

		set.FillFrom(provider.NewRate(symbol, provider.Some(buy), provider.Some(sell)))
	}

	return nil
}

func parseValue(cell *goquery.Selection, what string) (float64, error) {
	text, err := provider.Text(cell, what)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(valueRe.FindString(text), 64)
	if err != nil {
		return 0, nil
	}

	return v, nil
}
