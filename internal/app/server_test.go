package app

import (
	"context"
	"testing"
)

// Shutdown must be safe on a server whose Init never ran, since main only
// spawns the serve goroutine after Init succeeds.
func TestShutdownWithoutInit(t *testing.T) {
	srv := &Server{}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
