package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/robotomize/armbankrate"
	"github.com/robotomize/armbankrate/internal/config"
	"github.com/robotomize/armbankrate/internal/logging"
	"github.com/robotomize/armbankrate/provider/httputil"
	"github.com/spf13/cobra"
)

// Build-time variables (set via -ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "armbankrate",
		Short: "Exchange rates of Armenian banks",
		Long: `Armbankrate collects USD, EUR, RUB and GBP exchange rates of Armenian banks
and prints them as tables or JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			quiet, _ := cmd.Flags().GetBool("quiet")

			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), quiet)

			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./armbankrate.yaml)")
	root.PersistentFlags().BoolP("quiet", "q", false, "do not log failures of single banks")

	root.AddCommand(a.parseCmd())
	root.AddCommand(a.jsonCmd())
	root.AddCommand(a.banksCmd())
	root.AddCommand(versionCmd())

	return root
}

func newLogger(w io.Writer, quiet bool) *log.Logger {
	if quiet {
		return logging.Discard()
	}

	return logging.NewLogger(w, "Armbankrate: ", log.Lmsgprefix)
}

func (a *app) parser() *armbankrate.Parser {
	client := &http.Client{
		Transport: httputil.DefaultTransport(),
		Timeout:   a.cfg.HTTP.Timeout,
	}

	return armbankrate.New(
		client,
		armbankrate.WithUserAgent(a.cfg.HTTP.UserAgent),
		armbankrate.WithRetryNum(a.cfg.Fetch.RetryNum),
		armbankrate.WithRetryDuration(a.cfg.Fetch.RetryDuration),
		armbankrate.WithRequestTimeout(a.cfg.Fetch.RequestTimeout),
	)
}

func (a *app) withLogger(cmd *cobra.Command) context.Context {
	return logging.WithLogger(cmd.Context(), a.logger)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "armbankrate %s (%s)\n", version, commit)
		},
	}
}
