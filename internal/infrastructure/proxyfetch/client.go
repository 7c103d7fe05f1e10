// Package proxyfetch retrieves the HTML of an arbitrary public page through a
// chain of CORS proxies. The proxies are tried strictly in order, each with
// its own timeout; the first usable response wins, and when the chain is
// exhausted the caller gets a single sentinel error, not a retry loop.
package proxyfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/pkg/logger"
)

// maxBodyBytes caps how much of a page is read; previews only need the head.
const maxBodyBytes = 1 << 20

// Client walks the proxy chain.
type Client struct {
	proxies        []string // each with one %s slot for the escaped target
	attemptTimeout time.Duration
	httpClient     *http.Client
	log            *logger.Logger
}

// NewClient builds the fetcher. The http.Client has no global timeout; each
// attempt is bounded individually via context.
func NewClient(proxies []string, attemptTimeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		proxies:        proxies,
		attemptTimeout: attemptTimeout,
		httpClient:     &http.Client{},
		log:            log,
	}
}

// FetchHTML returns the first usable HTML body for target, or
// domain.ErrPreviewUnavailable once every proxy has failed.
func (c *Client) FetchHTML(ctx context.Context, target string) (string, error) {
	for _, proxy := range c.proxies {
		html, err := c.fetchVia(ctx, proxy, target)
		if err != nil {
			if ctx.Err() != nil {
				// The caller gave up; stop walking the chain.
				return "", fmt.Errorf("preview fetch canceled: %w", ctx.Err())
			}
			c.log.Debug().Err(err).Str("proxy", proxy).Str("target", target).
				Msg("preview proxy attempt failed, trying next")
			continue
		}
		return html, nil
	}
	return "", domain.ErrPreviewUnavailable
}

func (c *Client) fetchVia(ctx context.Context, proxy, target string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	endpoint := fmt.Sprintf(proxy, url.QueryEscape(target))
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("proxy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("proxy status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	html := string(body)
	if !usableHTML(html) {
		return "", fmt.Errorf("response is not usable HTML")
	}
	return html, nil
}

// usableHTML is a cheap sanity check: some proxies answer 200 with an error
// page or raw JSON.
func usableHTML(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "<title") ||
		strings.Contains(lower, "og:title") ||
		strings.Contains(lower, "<meta")
}
