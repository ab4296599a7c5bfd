package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/seagrayinc/streamdeck/pkg/streamdeck"
)

func TestWatchStopsOnCancelWithoutExtraScan(t *testing.T) {
	mgr, err := streamdeck.NewDeviceManager("dummy")
	if err != nil {
		t.Fatalf("dummy manager construction failed: %v", err)
	}
	defer mgr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	var out strings.Builder
	done := make(chan error, 1)
	go func() {
		// The interval is far longer than the cancel delay: cancellation
		// must end the wait instead of letting another scan run.
		done <- watchDecks(ctx, mgr, time.Hour, &out)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned an error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	if got := strings.Count(out.String(), "found"); got != 1 {
		t.Fatalf("watch ran %d scans, want exactly 1:\n%s", got, out.String())
	}
}
