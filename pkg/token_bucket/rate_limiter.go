package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket пополняется непрерывно: refillRate токенов в секунду, не больше capacity.
// Дробная часть накопленных токенов не теряется между запросами.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucketAt(capacity, refillRate, time.Now())
}

func newTokenBucketAt(capacity int, refillRate float64, now time.Time) *TokenBucket {
	if capacity < 0 {
		capacity = 0
	}
	if refillRate < 0 {
		refillRate = 0
	}
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now,
	}
}

func (t *TokenBucket) Allow() bool {
	return t.AllowAt(time.Now())
}

// AllowAt - Allow с явным моментом времени. Время назад не отматывает пополнение.
func (t *TokenBucket) AllowAt(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// full сообщает, что корзина полностью восстановилась к моменту now.
func (t *TokenBucket) full(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}
