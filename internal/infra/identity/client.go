// Package identity implements the IdentityProvider contract against the
// marketplace's identity backend.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dealerdesk/config"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const maxResponseBody = 1 << 20 // 1 MiB is plenty for any identity payload.

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the identity backend client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	return &client{
		baseURL: strings.TrimRight(cfg.Identity.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Identity.Timeout,
		},
		logger: logger,
	}
}

// Login exchanges credentials for a token pair and the user record.
func (c *client) Login(ctx context.Context, email, password string) (*service.TokenGrant, error) {
	body := map[string]string{"email": email, "password": password}

	var grant service.TokenGrant
	if err := c.postJSON(ctx, "/auth/login", body, &grant); err != nil {
		return nil, err
	}

	// A login response without an access token is a rejection regardless of
	// HTTP status; some identity deployments answer 200 with an error body.
	if grant.Access == "" {
		return nil, errors.Wrap(service.ErrIdentityRejected, "login response missing access token")
	}

	c.logTokenExpiry(ctx, grant.Access)

	return &grant, nil
}

// Refresh exchanges a refresh token for a new token pair. Single attempt.
func (c *client) Refresh(ctx context.Context, refreshToken string) (*service.TokenGrant, error) {
	body := map[string]string{"refresh": refreshToken}

	var grant service.TokenGrant
	if err := c.postJSON(ctx, "/auth/token/refresh", body, &grant); err != nil {
		return nil, err
	}

	if grant.Access == "" && grant.Refresh == "" {
		return nil, errors.Wrap(service.ErrIdentityRejected, "refresh response missing both tokens")
	}

	c.logTokenExpiry(ctx, grant.Access)

	return &grant, nil
}

// FetchUser returns the profile of the token's owner.
func (c *client) FetchUser(ctx context.Context, accessToken string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/user/", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build user request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrIdentityUnavailable, err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, errors.Wrap(service.ErrIdentityUnavailable, "read user response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(service.ErrIdentityRejected, "fetch user: status %d", resp.StatusCode)
	}

	if !json.Valid(payload) {
		return nil, errors.Wrap(service.ErrIdentityRejected, "user response is not valid JSON")
	}

	return json.RawMessage(payload), nil
}

func (c *client) postJSON(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrapf(err, "build request for %s", path)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(service.ErrIdentityUnavailable, err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return errors.Wrap(service.ErrIdentityUnavailable, "read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrapf(service.ErrIdentityRejected, "%s: status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(service.ErrIdentityRejected, "%s: undecodable body", path)
	}

	return nil
}

// logTokenExpiry surfaces the access token's exp claim for observability.
// The claim is read unverified and never used for validity decisions; the
// console learns about staleness only from the remote API's 401s.
func (c *client) logTokenExpiry(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}

	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return
	}

	c.logger.DebugContext(ctx, "access token issued",
		slog.Time("expires_at", expiresAt.Time),
		slog.Duration("ttl", time.Until(expiresAt.Time)),
	)
}
