package whttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const UserAgent = "auditscope/1.0 (+https://github.com/stonewall-sec/auditscope)"

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL        string
	Method     string
	CustomHost string
	Headers    []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode     int
	ResponseLength int
	BodyString     string
}

var defaultClient = newClient()

func newClient() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	// One attempt per request; callers decide what a failure means.
	c.RetryMax = 0
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = LogrusAdapter{logrus.StandardLogger()}
	return c
}

// GetDefaultClient returns the shared client used when a nil client is passed.
func GetDefaultClient() *retryablehttp.Client {
	return defaultClient
}

// SetLogger routes the shared client's diagnostics to l.
func SetLogger(l logrus.FieldLogger) {
	defaultClient.Logger = LogrusAdapter{l}
}

// SetupProxy sends every request of the shared client through proxy.
// TLS verification is disabled so intercepting proxies can be used for debugging.
func SetupProxy(proxy string) error {
	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("invalid proxy %q: %w", proxy, err)
	}
	defaultClient.HTTPClient.Transport = &http.Transport{
		Proxy:           http.ProxyURL(proxyURL),
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return nil
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (wRes *WHTTPRes, err error) {
	if client == nil {
		client = defaultClient
	}
	if wReq.Method == "" {
		wReq.Method = http.MethodGet
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, wReq.Method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	// Set custom Host header
	if wReq.CustomHost != "" {
		req.Host = wReq.CustomHost
	} else {
		if strings.HasSuffix(req.Host, ":80") {
			req.Host = strings.TrimSuffix(req.Host, ":80")
		} else if strings.HasSuffix(req.Host, ":443") {
			req.Host = strings.TrimSuffix(req.Host, ":443")
		}
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Cache-Control", "no-transform")
	req.Header.Set("Accept-Language", "en")

	for _, h := range wReq.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &WHTTPRes{
		StatusCode:     resp.StatusCode,
		ResponseLength: len(bodyBytes),
		BodyString:     string(bodyBytes),
	}, nil
}

// LogrusAdapter lets retryablehttp log through logrus at matching levels.
type LogrusAdapter struct {
	Logger logrus.FieldLogger
}

func (a LogrusAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.Logger.WithFields(fields(keysAndValues)).Error(msg)
}

func (a LogrusAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.Logger.WithFields(fields(keysAndValues)).Warn(msg)
}

func (a LogrusAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.Logger.WithFields(fields(keysAndValues)).Debug(msg)
}

func (a LogrusAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.Logger.WithFields(fields(keysAndValues)).Debug(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}
