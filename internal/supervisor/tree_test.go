// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maintainarr/maintainarr/internal/logging"
)

// countingService fails the first failures runs, then blocks until stopped.
type countingService struct {
	name     string
	failures int32
	starts   atomic.Int32
}

func (s *countingService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failures {
		return errors.New("boom")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func testLogger() *slog.Logger {
	var buf bytes.Buffer
	return slog.New(logging.NewSlogHandlerWithLogger(logging.NewTestLogger(&buf)))
}

func TestTreeConfigDefaults(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{})
	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}

	tree = NewTree(testLogger(), TreeConfig{FailureBackoff: time.Second})
	if tree.config.FailureBackoff != time.Second || tree.config.FailureThreshold != 5 {
		t.Errorf("partial config = %+v", tree.config)
	}
}

func TestTreeRunsBothLayers(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})
	sweeper := &countingService{name: "sweeper"}
	server := &countingService{name: "server"}
	tree.AddMaintenanceService(sweeper)
	tree.AddAPIService(server)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for sweeper.starts.Load() == 0 || server.starts.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("services were not started")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down")
	}
}

func TestTreeRestartsFailingService(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	flaky := &countingService{name: "flaky", failures: 2}
	stable := &countingService{name: "stable"}
	tree.AddMaintenanceService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	for flaky.starts.Load() < 3 {
		select {
		case <-ctx.Done():
			t.Fatalf("flaky service started %d times, want 3", flaky.starts.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("stable service started %d times, want 1", got)
	}

	cancel()
	<-errCh
}
