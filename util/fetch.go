package util

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

// StatusError is returned for any non-2xx upstream response; it
// propagates out of loaders untouched.
type StatusError struct {
	StatusCode int
	URL        string
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", err.StatusCode, err.URL)
}

// FetchJSON performs one GET and hands the body to gjson, for the
// loosely-typed payloads where fields come and go per post.
func FetchJSON(
	ctx context.Context,
	client *http.Client,
	requestURL string,
	headers map[string]string,
) (gjson.Result, error) {
	body, err := fetch(ctx, client, requestURL, headers)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

// DecodeJSON performs one GET and decodes the body into v.
func DecodeJSON(
	ctx context.Context,
	client *http.Client,
	requestURL string,
	headers map[string]string,
	v any,
) error {
	body, err := fetch(ctx, client, requestURL, headers)
	if err != nil {
		return err
	}
	if err := sonic.ConfigFastest.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ResolveRedirect performs one HEAD with redirects disabled and returns
// the Location header verbatim. The derived client shares the session's
// transport, so connection reuse is kept.
func ResolveRedirect(
	ctx context.Context,
	client *http.Client,
	requestURL string,
) (string, error) {
	noRedirect := *client
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	res, err := noRedirect.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{StatusCode: res.StatusCode, URL: requestURL}
	}
	return res.Header.Get("Location"), nil
}

func fetch(
	ctx context.Context,
	client *http.Client,
	requestURL string,
	headers map[string]string,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: res.StatusCode, URL: requestURL}
	}
	return io.ReadAll(res.Body)
}
