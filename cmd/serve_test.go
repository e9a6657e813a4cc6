package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stonewall-sec/auditscope/pkg/catalog"
	"github.com/stonewall-sec/auditscope/pkg/view"
)

func TestLogWhenReady(t *testing.T) {
	st := view.New(nil)
	st.Settle([]catalog.AuditRecord{{Name: "Core Review", DocumentURL: "https://x/a.pdf"}})
	if !logWhenReady(context.Background(), st) {
		t.Error("expected a settled state to be reported")
	}
}

func TestLogWhenReadyReturnsOnShutdown(t *testing.T) {
	st := view.New(nil)
	st.Close()
	st.Settle(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- logWhenReady(ctx, st) }()
	cancel()

	select {
	case reported := <-done:
		if reported {
			t.Error("closed state must not be reported as ready")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("logWhenReady did not return after cancellation")
	}
}
