// Package marketplace implements the bearer-authenticated JSON client the
// resource stores use to reach the remote marketplace REST API.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dealerdesk/config"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/errors"
)

const maxResponseBody = 8 << 20

type client struct {
	baseURL    string
	httpClient *http.Client
	tokens     service.SessionTokens
	logger     *slog.Logger
}

// NewClient is the constructor for the marketplace API client.
func NewClient(cfg *config.Config, tokens service.SessionTokens, logger *slog.Logger) service.MarketplaceAPI {
	return &client{
		baseURL: strings.TrimRight(cfg.Marketplace.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Marketplace.Timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

func (c *client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, target, nil, out)
}

func (c *client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do runs one request with the current access token. A 401 triggers the
// single-attempt session refresh; a successful refresh replays the request
// exactly once with the new token. A failed refresh has already cleared all
// auth state, so the unauthorized error is surfaced as the non-local failure
// the guard reacts to.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	status, err := c.send(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return nil
	}

	if err := c.tokens.RefreshSession(ctx); err != nil {
		c.logger.WarnContext(ctx, "session refresh failed after 401",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.Wrap(service.ErrMarketplaceUnauthorized, "session refresh failed")
	}

	status, err = c.send(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return errors.Wrap(service.ErrMarketplaceUnauthorized, "still unauthorized after refresh")
	}

	return nil
}

// send performs a single HTTP exchange. A 401 is reported through the status
// return so the caller can run the refresh flow; every other failure maps to
// one of the marketplace error categories.
func (c *client) send(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, errors.Wrapf(err, "build %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return 0, errors.Wrap(service.ErrMarketplaceUnauthorized, "no access token")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(service.ErrMarketplaceUnavailable, err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return 0, errors.Wrap(service.ErrMarketplaceUnavailable, "read response body")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return http.StatusUnauthorized, nil
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return resp.StatusCode, errors.Wrapf(service.ErrMarketplaceRejected,
			"%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return resp.StatusCode, errors.Wrapf(service.ErrMarketplaceMalformed,
				"%s %s: %s", method, path, err.Error())
		}
	}

	return resp.StatusCode, nil
}
