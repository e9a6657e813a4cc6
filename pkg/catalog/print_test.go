package catalog

import (
	"bytes"
	"testing"
)

func TestPrintRecords(t *testing.T) {
	recs := []AuditRecord{
		{
			Name:        "Core Review",
			Client:      "Acme",
			Chain:       &Chain{Name: "Monad"},
			Findings:    &Findings{High: 1, Low: 2},
			DocumentURL: "https://example.com/core.md",
		},
		{Name: "Remote Audit", DocumentURL: "https://example.com/remote.pdf", SizeLabel: "2.0 KB", FileName: "remote-audit.pdf"},
	}

	var buf bytes.Buffer
	if err := PrintRecords(&buf, recs, "nhfu", " | "); err != nil {
		t.Fatal(err)
	}
	want := "Core Review | Monad | 1 High, 2 Low | https://example.com/core.md\n" +
		"Remote Audit |  |  | https://example.com/remote.pdf\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, buf.String())
	}

	buf.Reset()
	if err := PrintRecords(&buf, recs, "ns", ","); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Core Review,\nRemote Audit,2.0 KB\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestPrintRecordsBadFlag(t *testing.T) {
	var buf bytes.Buffer
	err := PrintRecords(&buf, []AuditRecord{{Name: "x", DocumentURL: "y"}}, "nz", " ")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
