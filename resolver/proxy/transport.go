package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"time"

	"encore.dev/rlog"
	"golang.org/x/time/rate"
)

// Doer sends a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type TransportOptions struct {
	Timeout       time.Duration
	Retries       int
	Concurrency   int
	RatePerSecond float64
	Burst         int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
}

// NewTransport layers retry, concurrency and rate limiting over an http.Client with a hard timeout.
// The outermost layer is the rate limiter, so retries also spend tokens.
func NewTransport(opts TransportOptions) Doer {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 100 * time.Millisecond
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = time.Second
	}

	var d Doer = newHTTPClient(opts.Timeout)

	if opts.Retries > 0 {
		d = &retryDoer{
			base:      d,
			retries:   opts.Retries,
			baseDelay: opts.BaseDelay,
			maxDelay:  opts.MaxDelay,
		}
	}
	if opts.Concurrency > 0 {
		d = &semaphoreDoer{base: d, slots: make(chan struct{}, opts.Concurrency)}
	}
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		d = &limitedDoer{base: d, limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)}
	}
	return d
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   2 * time.Second,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: tr, Timeout: timeout}
}

type limitedDoer struct {
	base    Doer
	limiter *rate.Limiter
}

func (l *limitedDoer) Do(req *http.Request) (*http.Response, error) {
	if err := l.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return l.base.Do(req)
}

type semaphoreDoer struct {
	base  Doer
	slots chan struct{}
}

func (s *semaphoreDoer) Do(req *http.Request) (*http.Response, error) {
	select {
	case s.slots <- struct{}{}:
	case <-req.Context().Done():
		return nil, req.Context().Err()
	}
	defer func() { <-s.slots }()

	return s.base.Do(req)
}

type retryDoer struct {
	base      Doer
	retries   int
	baseDelay time.Duration
	maxDelay  time.Duration
}

func (r *retryDoer) Do(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= r.retries; attempt++ {
		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		cur, err := cloneRequest(req)
		if err != nil {
			return nil, err
		}

		resp, err := r.base.Do(cur)
		switch {
		case err == nil && !retryableStatus(resp.StatusCode):
			return resp, nil
		case err == nil:
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 32*1024))
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("retryable status=%d", resp.StatusCode)
		case !retryableError(err):
			return nil, err
		default:
			lastErr = err
		}

		rlog.Warn("backend request retry",
			"attempt", attempt+1,
			"max_attempts", r.retries+1,
			"url", req.URL.String(),
			"error", lastErr,
		)

		if attempt == r.retries {
			break
		}
		if err := sleepCtx(req.Context(), backoff(r.baseDelay, r.maxDelay, attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func retryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << attempt
	if d > max {
		d = max
	}
	// full jitter in [0.5d, 1.5d)
	return time.Duration(float64(d) * (0.5 + rand.Float64()))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cloneRequest(req *http.Request) (*http.Request, error) {
	cloned := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return cloned, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("cannot retry request with body: GetBody is nil")
	}
	b, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("cannot retry request with body: %w", err)
	}
	cloned.Body = b
	return cloned, nil
}
