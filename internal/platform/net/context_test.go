package net_test

import (
	"context"
	"testing"

	pnet "findstrings/internal/platform/net"
)

func TestWithRequest_RoundTrip(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}
}

func TestWithRequest_EmptyIsNoop(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithRequest(base, ""); ctx != base {
		t.Fatalf("expected the same context back for an empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare context got %q", got)
	}
}
