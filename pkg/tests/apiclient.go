package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httputil"
	"net/url"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls a test server and decodes JSON replies. Cookies set by the
// server are kept and sent back on later calls.
type APIClient struct {
	t       testing.TB
	baseURL *url.URL
	client  *http.Client
}

func NewAPIClient(t testing.TB, baseURL string, client *http.Client) *APIClient {
	t.Helper()

	u, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	withJar := *client
	withJar.Jar = jar

	return &APIClient{
		t:       t,
		baseURL: u,
		client:  &withJar,
	}
}

// SetCookie stores a cookie as if the server had set it.
func (a *APIClient) SetCookie(name, value string) {
	a.client.Jar.SetCookies(a.baseURL, []*http.Cookie{{Name: name, Value: value, Path: "/"}})
}

func (a *APIClient) Get(ctx context.Context, endpoint string, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, nil, dest, errDest)
}

// Post sends body as JSON. A string body is sent verbatim.
func (a *APIClient) Post(ctx context.Context, endpoint string, body, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodPost, endpoint, body, dest, errDest)
}

func (a *APIClient) Put(ctx context.Context, endpoint string, body, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodPut, endpoint, body, dest, errDest)
}

func (a *APIClient) do(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	dest any,
	errDest any,
) (*http.Response, error) {
	payload, err := encode(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.String()+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	a.t.Logf("request: %s %s", req.Method, req.URL)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.t.Logf("response: %s", dump)
	}

	if err = decode(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return resp, nil
}

func encode(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return http.NoBody, nil
	case string:
		return strings.NewReader(b), nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		return bytes.NewReader(raw), nil
	}
}

func decode(r *http.Response, dest, errDest any) error {
	target := errDest
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		target = dest
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
