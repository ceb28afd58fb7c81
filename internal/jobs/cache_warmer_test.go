package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingCache struct {
	calls atomic.Int32
}

func (c *countingCache) Refresh(context.Context) int {
	return int(c.calls.Add(1))
}

func TestCacheWarmerRefreshesUntilCancelled(t *testing.T) {
	faqs := &countingCache{}
	keywords := &countingCache{}
	w := NewCacheWarmer(map[string]Refresher{"faq": faqs, "keywords": keywords}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for faqs.calls.Load() < 3 || keywords.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("warmer refreshed faq %d times, keywords %d times; want at least 3 each",
				faqs.calls.Load(), keywords.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}

func TestCacheWarmerSkipsWhenCancelled(t *testing.T) {
	c := &countingCache{}
	w := NewCacheWarmer(map[string]Refresher{"faq": c}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.refreshAll(ctx)

	if n := c.calls.Load(); n != 0 {
		t.Errorf("refreshAll() after cancel made %d calls, want 0", n)
	}
}
