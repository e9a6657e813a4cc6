package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `audits:
  - name: Core Review
    client: Lemonad
    documentUrl: https://raw.example.com/audits/core.md
  - name: DEX Review
    client: Lemonad
    documentUrl: https://raw.example.com/audits/dex.md
`

func writeTestConfig(t *testing.T, apiURL string) string {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := fmt.Sprintf(`remote:
  api_url: %s
  owner: o
  repo: r
  branch: main
  path: audits
catalog:
  file: %s
`, apiURL, catalogPath)
	cfgPath := filepath.Join(dir, "auditscope.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

func runList(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	return out.String()
}

func TestListMergesRemoteDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/contents/audits" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[
		  {"name": "cover.png", "type": "file", "size": 300, "download_url": "https://raw.example.com/audits/cover.png"},
		  {"name": "lemonad-core-security-audit.pdf", "type": "file", "size": 2048,
		   "download_url": "https://raw.example.com/audits/lemonad-core-security-audit.pdf"}
		]`)
	}))
	defer srv.Close()

	got := runList(t, "list", "--config", writeTestConfig(t, srv.URL), "-o", "nsu", "-d", "|")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	want := []string{
		"Core Review||https://raw.example.com/audits/core.md",
		"DEX Review||https://raw.example.com/audits/dex.md",
		"Lemonad Core Security Audit|2.0 KB|https://raw.example.com/audits/lemonad-core-security-audit.pdf",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestListFallsBackToCurated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	got := runList(t, "list", "--config", writeTestConfig(t, srv.URL), "-o", "n", "-d", " ")
	if got != "Core Review\nDEX Review\n" {
		t.Fatalf("expected curated records only, got %q", got)
	}
}
