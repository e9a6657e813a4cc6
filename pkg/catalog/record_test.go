package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestBadgesSkipsZeroCounts(t *testing.T) {
	f := Findings{Critical: 1, Medium: 3, Info: 2}
	got := f.Badges()
	want := []Badge{{"Critical", 1}, {"Medium", 3}, {"Info", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if f.Total() != 6 {
		t.Fatalf("expected total 6, got %d", f.Total())
	}
	if len((Findings{}).Badges()) != 0 {
		t.Fatal("expected no badges for empty findings")
	}
}

func TestValidate(t *testing.T) {
	ok := AuditRecord{Name: "a", DocumentURL: "https://example.com/a.pdf"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (AuditRecord{DocumentURL: "x"}).Validate(); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if err := (AuditRecord{Name: "a"}).Validate(); !errors.Is(err, ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument, got %v", err)
	}

	neg := ok
	neg.Findings = &Findings{Low: -1}
	if err := neg.Validate(); err == nil {
		t.Fatal("expected error for negative count")
	}
}
