package token_bucket

import "time"

func NewTokenBucketAt(capacity int, refillRate float64, now time.Time) *TokenBucket {
	return newTokenBucketAt(capacity, refillRate, now)
}

func NewBucketsWithClock(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *Buckets {
	return newBuckets(capacity, refillRate, idleTTL, now)
}
