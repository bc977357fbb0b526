package token_bucket

import (
	"sync"
	"time"
)

/*
Allow возвращает true/false: запрос либо принимается, либо отклоняется.
Токены пополняются лениво при каждом вызове исходя из прошедшего времени.
*/

type Limiter interface {
	Allow() bool
}

type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens > 0 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) full(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)

	if tokensToAdd > 0 {
		t.tokens += tokensToAdd
		if t.tokens > t.capacity {
			t.tokens = t.capacity
		}
		t.lastRefill = now
	}
}

// KeyedTokenBucket держит отдельное ведро на ключ (например, адрес отправителя вебхука),
// чтобы один шумный клиент не выедал общий лимит.
type KeyedTokenBucket struct {
	capacity   int
	refillRate float64
	maxKeys    int

	mu      sync.Mutex
	buckets map[string]*TokenBucket
}

func NewKeyedTokenBucket(capacity int, refillRate float64, maxKeys int) *KeyedTokenBucket {
	return &KeyedTokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		maxKeys:    maxKeys,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (k *KeyedTokenBucket) AllowKey(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		if k.maxKeys > 0 && len(k.buckets) >= k.maxKeys {
			k.evictFull(time.Now())
		}
		bucket = NewTokenBucket(k.capacity, k.refillRate)
		k.buckets[key] = bucket
	}
	k.mu.Unlock()

	return bucket.Allow()
}

// Len количество отслеживаемых ключей.
func (k *KeyedTokenBucket) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// evictFull удаляет ведра, которые уже полностью восстановились: они ничем не отличаются от новых.
func (k *KeyedTokenBucket) evictFull(now time.Time) {
	for key, bucket := range k.buckets {
		if bucket.full(now) {
			delete(k.buckets, key)
		}
	}
}
