package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCuratedIsValidAndOrdered(t *testing.T) {
	recs, err := Curated()
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	if len(recs) != 9 {
		t.Fatalf("expected 9 curated audits, got %d", len(recs))
	}
	if recs[0].Name != "Lemonad Core Security Review" {
		t.Fatalf("unexpected first record %q", recs[0].Name)
	}
	if recs[8].Client != "DTreon" || recs[8].Chain == nil || recs[8].Chain.Name != "BNB Chain" {
		t.Fatalf("unexpected last record %+v", recs[8])
	}
	for _, r := range recs {
		if r.IsRemote() || r.SizeLabel != "" {
			t.Fatalf("curated record %q looks remote", r.Name)
		}
		if r.Socials["twitter"] == "" {
			t.Fatalf("curated record %q lost its socials", r.Name)
		}
	}
}

func TestLoadCurated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audits.yaml")
	content := `audits:
  - name: One
    documentUrl: https://example.com/one.pdf
    findings: {high: 2}
  - name: Two
    documentUrl: https://example.com/two.pdf
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	recs, err := LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated: %v", err)
	}
	if len(recs) != 2 || recs[0].Name != "One" || recs[1].Name != "Two" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if recs[0].Findings == nil || recs[0].Findings.High != 2 {
		t.Fatalf("findings not decoded: %+v", recs[0].Findings)
	}

	if _, err := LoadCurated(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseCuratedRejectsInvalid(t *testing.T) {
	if _, err := ParseCurated([]byte("audits:\n  - name: nourl\n")); err == nil {
		t.Fatal("expected error for record without document url")
	}
	if _, err := ParseCurated([]byte("audits: [")); err == nil {
		t.Fatal("expected yaml error")
	}
	recs, err := ParseCurated([]byte("audits: []\n"))
	if err != nil || len(recs) != 0 {
		t.Fatalf("expected empty catalog, got %v, %v", recs, err)
	}
}
