package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToMax(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 3, Window: time.Minute})
	defer l.Close()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := l.Take(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Take %d failed: %v", i, err)
		}
		if !res.Allowed {
			t.Errorf("request %d should be allowed", i)
		}
		if res.Remaining != 3-i {
			t.Errorf("request %d: expected remaining %d, got %d", i, 3-i, res.Remaining)
		}
	}

	res, _ := l.Take(ctx, "1.2.3.4")
	if res.Allowed {
		t.Error("request over the limit should be denied")
	}
	if res.Remaining != 0 {
		t.Errorf("expected remaining 0, got %d", res.Remaining)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 1, Window: time.Minute})
	defer l.Close()
	ctx := context.Background()

	l.Take(ctx, "1.2.3.4")
	if res, _ := l.Take(ctx, "1.2.3.4"); res.Allowed {
		t.Error("second request from same key should be denied")
	}
	if res, _ := l.Take(ctx, "5.6.7.8"); !res.Allowed {
		t.Error("request from a different key should be allowed")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 1, Window: time.Minute})
	defer l.Close()
	ctx := context.Background()

	base := time.Now()
	l.now = func() time.Time { return base }

	l.Take(ctx, "k")
	if res, _ := l.Take(ctx, "k"); res.Allowed {
		t.Error("expected denial inside the window")
	}

	// 視窗結束後重新計數
	l.now = func() time.Time { return base.Add(time.Minute + time.Second) }
	if res, _ := l.Take(ctx, "k"); !res.Allowed {
		t.Error("expected a fresh window after reset")
	}
}

func TestMemoryLimiter_DeniedRequestsStillCount(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 2, Window: time.Minute})
	defer l.Close()
	ctx := context.Background()

	var reset time.Time
	for i := 0; i < 5; i++ {
		res, _ := l.Take(ctx, "k")
		if i == 0 {
			reset = res.ResetAt
		}
		// 超額請求不延後視窗
		if !res.ResetAt.Equal(reset) {
			t.Errorf("request %d moved the reset time", i)
		}
	}
}

func TestMemoryLimiter_Undo(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 2, Window: time.Minute})
	defer l.Close()
	ctx := context.Background()

	l.Take(ctx, "k")
	l.Take(ctx, "k")
	if res, _ := l.Take(ctx, "k"); res.Allowed {
		t.Fatal("expected limit to be reached")
	}

	// 退回兩次後應再有一個額度
	l.Undo(ctx, "k")
	l.Undo(ctx, "k")
	if res, _ := l.Take(ctx, "k"); !res.Allowed {
		t.Error("expected allowance after undo")
	}
}

func TestMemoryLimiter_UndoUnknownKeyIsNoop(t *testing.T) {
	l := NewMemoryLimiter(Config{Max: 1, Window: time.Minute})
	defer l.Close()

	if err := l.Undo(context.Background(), "never-seen"); err != nil {
		t.Errorf("Undo on unknown key should be a no-op, got %v", err)
	}
}
