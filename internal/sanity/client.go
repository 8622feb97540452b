// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sanity implements a minimal write-capable client for the Sanity
// content store HTTP API: GROQ queries, create/patch mutations, and binary
// asset uploads. It covers exactly the surface the seeder needs.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/tollington/choirseed/internal/config"
)

const (
	// MaxErrorBodyLen caps how much of an API error response is read back.
	MaxErrorBodyLen = 10 * 1024

	// UserAgent is sent with every API request.
	UserAgent = "choirseed/1.0"
)

// Client talks to one project/dataset of the content store.
type Client struct {
	baseURL string
	dataset string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a client from the given configuration. The underlying HTTP
// client enforces the configured request timeout; the rate limiter spaces
// out API calls so a seed run stays under the store's request quota.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL(),
		dataset: cfg.Dataset,
		token:   cfg.Token,
		http: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeout) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		logger:  logger,
	}
}

// apiError is the store's error envelope. The description field is not
// always present, so the raw body is kept as a fallback.
type apiError struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// Fetch runs a GROQ query with the given parameters and decodes the result
// envelope into out. A "[0]" query that matches nothing leaves out at its
// zero value (the JSON result is null).
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding query param %q: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating query request: %w", err)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.do(req, &envelope); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if out == nil || len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decoding query result: %w", err)
	}
	return nil
}

// Create submits a create mutation for the given document and returns the
// store-assigned identifier.
func (c *Client) Create(ctx context.Context, doc any) (string, error) {
	body := map[string]any{
		"mutations": []any{
			map[string]any{"create": doc},
		},
	}

	var resp struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := c.mutate(ctx, body, &resp); err != nil {
		return "", fmt.Errorf("create failed: %w", err)
	}
	if len(resp.Results) == 0 || resp.Results[0].ID == "" {
		return "", fmt.Errorf("create returned no document id")
	}
	return resp.Results[0].ID, nil
}

// Patch sets the given fields on an existing document and commits the
// change in a single mutation.
func (c *Client) Patch(ctx context.Context, id string, set map[string]any) error {
	body := map[string]any{
		"mutations": []any{
			map[string]any{
				"patch": map[string]any{
					"id":  id,
					"set": set,
				},
			},
		},
	}

	if err := c.mutate(ctx, body, nil); err != nil {
		return fmt.Errorf("patch of %s failed: %w", id, err)
	}
	return nil
}

// UploadImage pushes raw image bytes to the asset endpoint under the given
// filename and returns the asset identifier for use in asset references.
func (c *Client) UploadImage(ctx context.Context, data []byte, filename string) (string, error) {
	endpoint := fmt.Sprintf("%s/assets/images/%s?filename=%s",
		c.baseURL, c.dataset, url.QueryEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", http.DetectContentType(data))

	var resp struct {
		Document struct {
			ID string `json:"_id"`
		} `json:"document"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("upload of %s failed: %w", filename, err)
	}
	if resp.Document.ID == "" {
		return "", fmt.Errorf("upload of %s returned no asset id", filename)
	}

	c.logger.Debug("uploaded image asset", "filename", filename, "asset_id", resp.Document.ID, "bytes", len(data))
	return resp.Document.ID, nil
}

// mutate posts a mutation payload to the mutation endpoint.
func (c *Client) mutate(ctx context.Context, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding mutations: %w", err)
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s?returnIds=true", c.baseURL, c.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating mutation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do sends a request with auth headers under the rate limiter and decodes
// a 2xx response body into out. Failures are not retried; the caller's
// whole run aborts and a re-run relies on natural-key checks to skip work
// already done.
func (c *Client) do(req *http.Request, out any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an error carrying the store's
// description when one is present.
func (c *Client) decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyLen))

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error.Description != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Error.Description)
		}
		if apiErr.Message != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Message)
		}
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
