// Command fixtures downloads the current rate documents of every bank into a directory
// and rewrites a file only when its content changed. The files are used to refresh
// parser test fixtures when a bank changes its markup.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/armbankrate"
	"github.com/robotomize/armbankrate/internal/hashio"
	"github.com/robotomize/armbankrate/internal/logging"
	"github.com/robotomize/armbankrate/provider/httputil"
)

const defaultRequestTimeout = 10 * time.Second

var ErrContentEqual = errors.New("content is equal to the previous version")

var (
	flagSet  = flag.NewFlagSet("fixtures", flag.ContinueOnError)
	target   = flagSet.String("target", "", "path to the folder with the fixtures")
	hashName = flagSet.String("hash", "md5", "hash alg for compare files, variants: md5, sha1, sha256")
)

// document is one request whose response body is stored in file. A nil form means GET
type document struct {
	file string
	form url.Values
}

var documents = map[string][]document{
	armbankrate.BankUnibank:      {{file: "unibank.html"}},
	armbankrate.BankConversebank: {{file: "conversebank.html"}},
	armbankrate.BankEvocabank:    {{file: "evocabank.html"}},
	armbankrate.BankIdbank: {
		{file: "idbank_cash.html", form: url.Values{"RATE_TYPE": {"CASH"}}},
		{file: "idbank_noncash.html", form: url.Values{"RATE_TYPE": {"NO_CASH"}}},
	},
	armbankrate.BankInecobank:   {{file: "inecobank.json"}},
	armbankrate.BankArdshinbank: {{file: "ardshinbank.json"}},
}

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger(os.Stderr, "Fixtures: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *target == "" {
		logger.Fatal("use -target <path> path to the folder with the fixtures")
	}

	newHash, err := hashio.Algorithm(*hashName)
	if err != nil {
		logger.Fatal(err)
	}

	client := httputil.DefaultSourceHTTPClient()
	p := armbankrate.New(&http.Client{Transport: httputil.DefaultTransport()})

	targets := make(map[string]url.URL, len(documents))
	for _, key := range armbankrate.Banks() {
		source, err := p.Source(key)
		if err != nil {
			logger.Fatal(err)
		}
		targets[key] = source.URL()
	}

	if err := realMain(ctx, client, *target, targets, newHash); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			failed := false
			for _, wrErr := range merr.WrappedErrors() {
				if errors.Is(wrErr, ErrContentEqual) {
					logger.Printf("skip: %v", wrErr)
					continue
				}
				logger.Print(wrErr)
				failed = true
			}

			if failed {
				os.Exit(1)
			}

			return
		}

		logger.Fatal(err)
	}
}

func realMain(
	ctx context.Context,
	client httputil.SourceHTTPClient,
	dir string,
	targets map[string]url.URL,
	newHash hashio.NewFunc,
) error {
	var group multierror.Group

	for key, u := range targets {
		for _, doc := range documents[key] {
			u, doc := u, doc
			group.Go(func() error {
				if err := sync(ctx, client, u, doc, dir, newHash); err != nil {
					return fmt.Errorf("sync %s: %w", doc.file, err)
				}

				return nil
			})
		}
	}

	return group.Wait().ErrorOrNil()
}

func sync(
	ctx context.Context,
	client httputil.SourceHTTPClient,
	u url.URL,
	doc document,
	dir string,
	newHash hashio.NewFunc,
) error {
	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	var (
		body []byte
		err  error
	)

	if doc.form != nil {
		body, err = client.PostForm(ctx, u, doc.form)
	} else {
		body, err = client.Get(ctx, u)
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", u.String(), err)
	}

	oldHash, err := hashio.FileSum(os.DirFS(dir), doc.file, newHash)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("hashing file content: %w", err)
	}

	newSum, err := hashio.Sum(bytes.NewReader(body), newHash)
	if err != nil {
		return fmt.Errorf("hashing body content: %w", err)
	}

	if bytes.Equal(oldHash, newSum) {
		return ErrContentEqual
	}

	var mode os.FileMode = 0o600
	path := filepath.Join(dir, doc.file)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, body, mode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
