// Package gateway implements the ProgramGateway port against the platform's
// REST gateway service. All outbound calls run through a shared circuit
// breaker so a degraded gateway trips fast instead of piling up timeouts.
// Retry policy is deliberately absent here; the surrounding platform owns it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"loyalty-console/internal/pkg/config"
	"loyalty-console/internal/pkg/errs"

	"github.com/sony/gobreaker/v2"
)

const userAgent = "loyalty-console/1.0"

// Client is the HTTP implementation of shared.ProgramGateway.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	cfg        config.GatewayConfig
	catalogue  *catalogueCache
}

func NewClient(cfg config.GatewayConfig) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cfg.BreakerName,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		breaker:    breaker,
		cfg:        cfg,
	}
	c.catalogue = newCatalogueCache(c, cfg.CatalogueTTL)
	return c
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode gateway request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errs.Wrap(err, "build gateway request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		// 5xx trips the breaker; 4xx is the caller's problem.
		if r.StatusCode >= 500 {
			r.Body.Close()
			return nil, fmt.Errorf("gateway returned %d", r.StatusCode)
		}
		return r, nil
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "gateway call failed"), errs.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(errs.Newf("gateway: %s %s returned 404", method, url), errs.ErrProgramNotFound)
	case resp.StatusCode >= 400:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errs.Mark(
			errs.Newf("gateway: %s %s returned %d: %s", method, url, resp.StatusCode, payload),
			errs.ErrGatewayRejected,
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode gateway response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}
