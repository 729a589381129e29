package http

import (
	"context"
	"testing"
	"time"

	"ledgerdesk/internal/platform/config"
)

func TestServerRunStopsOnContextCancel(t *testing.T) {
	t.Setenv("API_ADDR", "127.0.0.1:0")
	srv := NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after cancel", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
