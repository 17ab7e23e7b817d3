package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"

	"github.com/epgroup-anab/auction-hero-forge/internal/wizard"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_PrunesIdleSessions(t *testing.T) {
	store := wizard.NewStore()
	store.StartCreate("u1")
	log := newTestLogger(t)

	// maxIdle of zero makes every session stale on the first tick
	s := New(store, 30*time.Millisecond, 0, log)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Equal(t, 0, store.Len())
}

func TestScheduler_Tick_KeepsActiveSessions(t *testing.T) {
	store := wizard.NewStore()
	store.StartCreate("u1")
	log := newTestLogger(t)

	s := New(store, 30*time.Millisecond, time.Hour, log)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Equal(t, 1, store.Len())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	store := wizard.NewStore()
	log := newTestLogger(t)

	s := New(store, time.Second, time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
