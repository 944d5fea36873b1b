// Package render prints rate tables for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/robotomize/armbankrate/label"
	"github.com/robotomize/armbankrate/provider"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Columns is the order of currencies in a table
var Columns = []label.Symbol{label.USD, label.EUR, label.RUB, label.GBP}

func New(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

type Printer struct {
	p *message.Printer
}

func Title(segment provider.Segment) string {
	if segment == provider.Noncash {
		return "NON-CASH"
	}

	return "CASH"
}

// Cell formats a rate as "buy / sell", absent prices are printed as 0
func (p *Printer) Cell(r provider.Rate) string {
	return p.p.Sprintf("%v / %v", r.Buy().OrZero(), r.Sell().OrZero())
}

// Table writes the segment title followed by one row per bank in the given order
func (p *Printer) Table(w io.Writer, segment provider.Segment, banks []provider.Source) error {
	if _, err := fmt.Fprintln(w, Title(segment)); err != nil {
		return fmt.Errorf("write title: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, 0, len(Columns)+1)
	header = append(header, "Bank")
	for _, symbol := range Columns {
		header = append(header, symbol.String())
	}

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, bank := range banks {
		rates := bank.Rates(segment)
		row := make([]string, 0, len(Columns)+1)
		row = append(row, bank.Name())
		for _, symbol := range Columns {
			row = append(row, p.Cell(rates.Get(symbol)))
		}

		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write %s: %w", bank.Name(), err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}
