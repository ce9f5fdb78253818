package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/accounted4/go-accounted4/internal/errors"
	"github.com/accounted4/go-accounted4/session"
)

// defaultHTTPClient is used for token endpoint calls unless
// Options.HTTPClient overrides it.
var defaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

// exchangeCode performs the authorization-code → token exchange and maps the
// response into a session record. Failures carry ErrUpstreamExchange.
func exchangeCode(ctx context.Context, client *http.Client, tokenURL string, form url.Values, header http.Header, providerName string, mapToken MapFunc) (*session.Record, error) {
	resp, err := postTokenForm(ctx, client, tokenURL, form, header)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUpstreamExchange, "provider %s: %v", providerName, err)
	}
	return mapToken(providerName, *resp), nil
}

// exchangeRefresh performs the refresh-token → token exchange. It has the
// same wire shape as exchangeCode but a distinct failure class, since the
// gate needs to tell a failed refresh apart from a failed login.
func exchangeRefresh(ctx context.Context, client *http.Client, refreshURL string, form url.Values, header http.Header, providerName string, mapToken MapFunc) (*session.Record, error) {
	resp, err := postTokenForm(ctx, client, refreshURL, form, header)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRefreshFailed, "provider %s: %v", providerName, err)
	}
	return mapToken(providerName, *resp), nil
}

// postTokenForm POSTs url-encoded form parameters and decodes the JSON
// response. Non-2xx statuses and embedded error fields both fail.
func postTokenForm(ctx context.Context, client *http.Client, tokenURL string, form url.Values, header http.Header) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if token.Error != "" {
		return nil, fmt.Errorf("%s: %s", token.Error, token.ErrorDescription)
	}
	return &token, nil
}
