package listing

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const sampleListing = `[
  {"name": "README.md", "type": "file", "size": 120,
   "download_url": "https://raw.example.com/o/r/main/audits/README.md",
   "html_url": "https://example.com/o/r/blob/main/audits/README.md"},
  {"name": "lemonad-core-security-audit.pdf", "type": "file", "size": 2048,
   "download_url": "https://raw.example.com/o/r/main/audits/lemonad-core-security-audit.pdf",
   "html_url": "https://example.com/o/r/blob/main/audits/lemonad-core-security-audit.pdf"},
  {"name": "drafts", "type": "dir", "size": 0, "download_url": null,
   "html_url": "https://example.com/o/r/tree/main/audits/drafts"}
]`

// fakeContents serves body with status on the contents path and counts hits.
func fakeContents(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/repos/o/r/contents/audits" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("ref") != "main" {
			t.Errorf("expected ref=main, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testLocation(apiURL string) Location {
	return Location{APIURL: apiURL, Owner: "o", Repo: "r", Branch: "main", Path: "audits"}
}
