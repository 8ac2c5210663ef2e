package rate

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter: mismo algoritmo fixed-window que RedisLimiter pero
// in-process. Para desarrollo y para el driver de storage en memoria.
type MemoryLimiter struct {
	Max    int64
	Window time.Duration

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	start time.Time
	hits  int64
}

func NewMemoryLimiter(max int, win time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		Max:     int64(max),
		Window:  win,
		windows: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now().UTC()
	start := now.Truncate(l.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || w.start.Before(start) {
		w = &window{start: start}
		l.windows[key] = w
	}
	w.hits++

	// limpieza oportunista de ventanas viejas
	if len(l.windows) > 1024 {
		for k, old := range l.windows {
			if old.start.Before(start) {
				delete(l.windows, k)
			}
		}
	}

	allowed := w.hits <= l.Max
	remaining := l.Max - w.hits
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Allowed:     allowed,
		Remaining:   remaining,
		CurrentHits: w.hits,
		WindowTTL:   w.start.Add(l.Window).Sub(now),
	}
	if !allowed {
		res.RetryAfter = res.WindowTTL
	}
	return res, nil
}
