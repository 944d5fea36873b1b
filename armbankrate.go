package armbankrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/armbankrate/internal/logging"
	"github.com/robotomize/armbankrate/provider"
	"github.com/robotomize/armbankrate/provider/httputil"
	"github.com/sethvargo/go-retry"
)

var ErrSerialization = errors.New("json serialization")

const (
	// DefaultRetryNum every source is requested exactly once
	DefaultRetryNum      = 0
	DefaultRetryDuration = 5 * time.Second
)

type Option func(*Parser)

type Options struct {
	RetryNum      uint64
	RetryDuration time.Duration
	// RequestTimeout bounds a whole fetch cycle. Zero means no deadline
	RequestTimeout time.Duration
	UserAgent      string
}

// WithRetryNum set number of repeated requests for data retrieval errors from the source
func WithRetryNum(n uint64) Option {
	return func(p *Parser) {
		p.opts.RetryNum = n
	}
}

// WithRetryDuration constant retry backoff, non-positive values are ignored
func WithRetryDuration(t time.Duration) Option {
	return func(p *Parser) {
		if t > 0 {
			p.opts.RetryDuration = t
		}
	}
}

// WithRequestTimeout set a deadline for all source requests of one fetch cycle
func WithRequestTimeout(t time.Duration) Option {
	return func(p *Parser) {
		p.opts.RequestTimeout = t
	}
}

// WithUserAgent set the User-Agent header sent to the banks
func WithUserAgent(ua string) Option {
	return func(p *Parser) {
		p.opts.UserAgent = ua
	}
}

// New return Parser. The client is shared by every source and must be safe for concurrent use
func New(client *http.Client, opts ...Option) *Parser {
	p := &Parser{
		opts: Options{
			RetryNum:      DefaultRetryNum,
			RetryDuration: DefaultRetryDuration,
			UserAgent:     httputil.DefaultUserAgent,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	p.client = httputil.NewHTTPClient(client).WithUserAgent(p.opts.UserAgent)

	return p
}

type Parser struct {
	opts   Options
	client httputil.SourceHTTPClient
}

type ProviderRespStatus byte

const (
	ProviderRespStatusFailed ProviderRespStatus = iota
	ProviderRespStatusOK
)

// SourceInfo is the outcome of one source in a fetch cycle
type SourceInfo struct {
	Name   string
	Status ProviderRespStatus
	Err    error
}

// Request describes one fetch cycle
type Request struct {
	// Banks registry keys, empty or containing BankAll selects every bank
	Banks []string
	// Segments to present, empty selects both
	Segments []provider.Segment
	// Sort orders Response.Banks when set
	Sort *SortKey
}

type Response struct {
	Banks    []provider.Source
	Info     []SourceInfo
	Segments []provider.Segment
}

// Err returns the failure of the first failed source in request order
func (r Response) Err() error {
	for _, info := range r.Info {
		if info.Status == ProviderRespStatusFailed {
			return info.Err
		}
	}

	return nil
}

// Errors combines the failures of all sources
func (r Response) Errors() error {
	var merr *multierror.Error
	for _, info := range r.Info {
		if info.Status == ProviderRespStatusFailed {
			merr = multierror.Append(merr, info.Err)
		}
	}

	return merr.ErrorOrNil()
}

// Map returns banks keyed by display name
func (r Response) Map() map[string]provider.Source {
	m := make(map[string]provider.Source, len(r.Banks))
	for _, b := range r.Banks {
		m[b.Name()] = b
	}

	return m
}

// JSON encodes Map
func (r Response) JSON() ([]byte, error) {
	b, err := json.Marshal(r.Map())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return b, nil
}

// Fetch resolves the requested banks, fetches all of them concurrently and waits for every one.
// The returned error is the first source failure, the response is populated regardless
func (p *Parser) Fetch(ctx context.Context, req Request) (Response, error) {
	sources, err := p.Sources(req.Banks...)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		Banks:    sources,
		Segments: req.Segments,
		Info:     p.Aggregate(ctx, sources),
	}

	if len(resp.Segments) == 0 {
		resp.Segments = []provider.Segment{provider.Cash, provider.Noncash}
	}

	if req.Sort != nil {
		Sort(resp.Banks, *req.Sort)
	}

	return resp, resp.Err()
}

// backoff is built per source, the retry counter of WithMaxRetries is not shared
func (p *Parser) backoff() (retry.Backoff, error) {
	b, err := retry.NewConstant(p.opts.RetryDuration)
	if err != nil {
		return nil, fmt.Errorf("retry backoff: %w", err)
	}

	return retry.WithMaxRetries(p.opts.RetryNum, b), nil
}

// Aggregate runs FetchLatest of every source in its own goroutine and returns when all of them
// are done. A failure of one source does not affect the others
func (p *Parser) Aggregate(ctx context.Context, sources []provider.Source) []SourceInfo {
	var wg sync.WaitGroup

	logger := logging.FromContext(ctx)

	if p.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.RequestTimeout)
		defer cancel()
	}

	reports := make([]SourceInfo, len(sources))

	for idx, source := range sources {
		idx, source := idx, source
		wg.Add(1)
		go func() {
			defer wg.Done()
			report := SourceInfo{Name: source.Name(), Status: ProviderRespStatusOK}

			b, err := p.backoff()
			if err != nil {
				report.Status = ProviderRespStatusFailed
				report.Err = fmt.Errorf("fetch %s: %w", report.Name, err)
				logger.Printf("%v", report.Err)
				reports[idx] = report
				return
			}

			if err := retry.Do(ctx, b, func(ctx context.Context) error {
				if err := source.FetchLatest(ctx); err != nil {
					return retry.RetryableError(err)
				}

				return nil
			}); err != nil {
				report.Status = ProviderRespStatusFailed
				report.Err = fmt.Errorf("fetch %s: %w", report.Name, err)
				logger.Printf("%v", report.Err)
			}

			reports[idx] = report
		}()
	}

	wg.Wait()

	return reports
}
