package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	url2 "net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func waitForReady(ctx context.Context, endpoint string) error {
	timeout := 1 * time.Second
	client := http.Client{}
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			endpoint,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(250 * time.Millisecond)
		}
	}
}

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "ELDERCARE_ADDR":
		return "localhost:0", true
	case "ELDERCARE_SQLITE_URL":
		return ":memory:", true
	case "ELDERCARE_PPROF_PORT":
		return ":0", true
	default:
		return "", false
	}
}

type testServer struct {
	url    string
	client http.Client
}

// startTestServer starts the test server, waits for it to be ready, and
// returns a client wrapper with a cookie jar for session-dependent flows.
func startTestServer(t *testing.T, w io.Writer, lookupEnv func(string) (string, bool)) testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// We need to grab the dynamically allocated port from the log output.
	addrCh := make(chan string, 1)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "Addr" {
				addrCh <- a.Value.String()
			}
			return a
		},
	})))

	// Start the server and wait for it to be ready.
	go func() {
		if err := run(ctx, logger, lookupEnv); err != nil {
			cancel()
			assert.NoError(t, err)
		}
	}()
	select {
	case <-ctx.Done():
		t.Fatal("server failed to start")
		return testServer{}
	case addr := <-addrCh:
		serverURL := fmt.Sprintf("http://%s", addr)
		if err := waitForReady(ctx, fmt.Sprintf("%s/api/healthy", serverURL)); err != nil {
			require.NoError(t, err)
		}
		jar, err := newUnsafeCookieJar()
		require.NoError(t, err)
		return testServer{
			url:    serverURL,
			client: http.Client{Jar: jar},
		}
	}
}

// Get fetches a URL and returns the response.
func (s *testServer) Get(t *testing.T, urlPath string) *http.Response {
	t.Helper()
	resp, err := s.client.Get(s.url + urlPath)
	require.NoError(t, err)
	return resp
}

// GetDoc fetches a URL and returns a goquery document.
func (s *testServer) GetDoc(t *testing.T, urlPath string) *goquery.Document {
	t.Helper()
	resp := s.Get(t, urlPath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() {
		err := resp.Body.Close()
		require.NoError(t, err)
	}()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// SubmitForm finds the form matching formSelector in doc, merges the form's
// hidden inputs (CSRF token included) with the given values, submits it, and
// returns the document the server responds with after redirects.
func (s *testServer) SubmitForm(
	t *testing.T,
	doc *goquery.Document,
	formSelector string,
	values url2.Values,
) *goquery.Document {
	t.Helper()
	html, err := doc.Html()
	require.NoError(t, err)

	form := doc.Find(formSelector).First()
	require.Equal(t, 1, form.Length(), "form %s not found in document:\n%s", formSelector, html)
	action, ok := form.Attr("action")
	require.True(t, ok, "form %s has no action", formSelector)

	formData := url2.Values{}
	form.Find("input[type=hidden]").Each(func(_ int, input *goquery.Selection) {
		name, _ := input.Attr("name")
		value, _ := input.Attr("value")
		formData.Set(name, value)
	})
	for name, vals := range values {
		formData[name] = vals
	}

	resp, err := s.client.Post(s.url+action, "application/x-www-form-urlencoded", strings.NewReader(formData.Encode()))
	require.NoError(t, err)
	defer func(body io.ReadCloser) {
		err = body.Close()
		assert.NoError(t, err)
	}(resp.Body)
	require.Contains(t, []int{http.StatusOK, http.StatusUnprocessableEntity}, resp.StatusCode)

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// SelectRole drives the role chooser and returns the resulting dashboard.
func (s *testServer) SelectRole(t *testing.T, role string) *goquery.Document {
	t.Helper()
	doc := s.GetDoc(t, "/")
	selector := fmt.Sprintf("form:has(input[name=role][value=%s])", role)
	return s.SubmitForm(t, doc, selector, url2.Values{})
}
