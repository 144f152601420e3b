package token_bucket

import (
	"sync"
	"time"
)

// Buckets - отдельная корзина на каждый ключ клиента. Корзины, которые простояли
// idleTTL и успели наполниться, удаляются при очередном обращении.
type Buckets struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*TokenBucket
	lastSeen  map[string]time.Time
	lastSweep time.Time
}

func NewBuckets(capacity int, refillRate float64, idleTTL time.Duration) *Buckets {
	return newBuckets(capacity, refillRate, idleTTL, time.Now)
}

func newBuckets(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *Buckets {
	return &Buckets{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*TokenBucket),
		lastSeen:   make(map[string]time.Time),
		lastSweep:  now(),
	}
}

func (b *Buckets) Allow(key string) bool {
	now := b.now()

	b.mu.Lock()
	b.sweep(now)
	bucket, ok := b.buckets[key]
	if !ok {
		bucket = newTokenBucketAt(b.capacity, b.refillRate, now)
		b.buckets[key] = bucket
	}
	b.lastSeen[key] = now
	b.mu.Unlock()

	return bucket.AllowAt(now)
}

// Len - число живых корзин.
func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.buckets)
}

func (b *Buckets) sweep(now time.Time) {
	if b.idleTTL <= 0 || now.Sub(b.lastSweep) < b.idleTTL {
		return
	}
	b.lastSweep = now

	for key, seen := range b.lastSeen {
		if now.Sub(seen) < b.idleTTL {
			continue
		}
		// недонаполненную корзину не выбрасываем, иначе клиент получит свежий лимит
		if !b.buckets[key].full(now) {
			continue
		}
		delete(b.buckets, key)
		delete(b.lastSeen, key)
	}
}
