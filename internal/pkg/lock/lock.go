package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("lock is held by another owner")

// снимаем только свой ключ, чужой (после истечения TTL) не трогаем
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Locker распределенная блокировка на SET NX PX. Без клиента любая попытка успешна.
type Locker struct {
	client Client
	key    string
	ttl    time.Duration
}

func New(client Client, key string, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// TryLock возвращает токен владельца или ErrNotAcquired.
func (l *Locker) TryLock(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if l.client == nil {
		return token, nil
	}

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire lock %s: %w", l.key, err)
	}
	if !ok {
		return "", ErrNotAcquired
	}

	return token, nil
}

func (l *Locker) Unlock(ctx context.Context, token string) error {
	if l.client == nil {
		return nil
	}

	err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}

	return nil
}
