package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/robotomize/armbankrate"
	"github.com/robotomize/armbankrate/internal/render"
	"github.com/robotomize/armbankrate/provider"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	errReceive     = errors.New("something went wrong while receiving bank rates")
	errSegmentType = errors.New("invalid currency type")
)

func parseSegments(s string) ([]provider.Segment, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return []provider.Segment{provider.Cash, provider.Noncash}, nil
	case "cash":
		return []provider.Segment{provider.Cash}, nil
	case "noncash", "non-cash":
		return []provider.Segment{provider.Noncash}, nil
	}

	return nil, fmt.Errorf("%w: %s", errSegmentType, s)
}

func (a *app) parseCmd() *cobra.Command {
	var (
		segmentType string
		sortBy      string
		elapsed     bool
	)

	cmd := &cobra.Command{
		Use:   "parse [banks...]",
		Short: "Print rate tables",
		Long: `Fetch the latest rates and print one table per currency type.
Without bank names, or with "all", every bank is requested.
A bank that does not answer is bounded by http.timeout (default 30s)
and fetch.request_timeout (default: no deadline).

Examples:
  armbankrate parse
  armbankrate parse unibank idbank --type cash
  armbankrate parse --sort usd-buy --time`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			segments, err := parseSegments(segmentType)
			if err != nil {
				return err
			}

			keys := make([]armbankrate.SortKey, 0, len(segments))
			if sortBy != "" {
				for _, segment := range segments {
					key, err := armbankrate.ParseSortKey(segment, sortBy)
					if err != nil {
						return err
					}
					keys = append(keys, key)
				}
			}

			resp, err := a.parser().Fetch(a.withLogger(cmd), armbankrate.Request{Banks: args, Segments: segments})
			if err != nil {
				return fmt.Errorf("%w: %w", errReceive, err)
			}

			out := cmd.OutOrStdout()
			printer := render.New(language.English)
			for i, segment := range resp.Segments {
				banks := make([]provider.Source, len(resp.Banks))
				copy(banks, resp.Banks)
				if len(keys) > 0 {
					armbankrate.Sort(banks, keys[i])
				}

				if i > 0 {
					fmt.Fprintln(out)
				}

				if err := printer.Table(out, segment, banks); err != nil {
					return err
				}
			}

			if elapsed {
				fmt.Fprintf(out, "\nTime: %s\n", time.Since(start).Round(time.Millisecond))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&segmentType, "type", "t", "all", "currency type: all, cash, noncash")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort by rate, e.g. usd-buy, eur-sell, rub-buy")
	cmd.Flags().BoolVar(&elapsed, "time", false, "print elapsed time")

	return cmd
}

func (a *app) jsonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [banks...]",
		Short: "Print rates as JSON",
		Long: `Fetch the latest rates and print a JSON object keyed by bank name.
A bank that does not answer is bounded by http.timeout (default 30s)
and fetch.request_timeout (default: no deadline).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.parser().Fetch(a.withLogger(cmd), armbankrate.Request{Banks: args})
			if err != nil {
				return fmt.Errorf("%w: %w", errReceive, err)
			}

			b, err := resp.JSON()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))

			return nil
		},
	}
}

func (a *app) banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported banks",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.parser().Sources(armbankrate.BankAll)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, key := range armbankrate.Banks() {
				u := sources[i].URL()
				fmt.Fprintf(tw, "%s\t%s\t%s\n", key, sources[i].Name(), u.String())
			}

			return tw.Flush()
		},
	}
}
