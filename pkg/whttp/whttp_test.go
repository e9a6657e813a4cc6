package whttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSendHTTPRequestSingleAttempt(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("custom header missing")
		}
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		URL:     srv.URL,
		Headers: []WHTTPHeader{{Name: "X-Test", Value: "yes"}},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != http.StatusBadGateway || res.BodyString != "upstream down" {
		t.Fatalf("unexpected response %+v", res)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly one attempt, got %d", n)
	}
}

func TestSetupProxyRejectsBadURL(t *testing.T) {
	if err := SetupProxy("http://[::1"); err == nil {
		t.Fatal("expected error for malformed proxy")
	}
}
