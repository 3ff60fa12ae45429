package services

import (
	"context"
	"fmt"
	"time"

	"sleeperbus/internal/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var releaseSeatScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisSeatLocker takes seat locks with SETNX. It only prevents double
// booking when every holder reads and writes the same seat state; with the
// in-memory ledger each process still has its own seats. Keys expire after
// TTL in case a holder dies mid-request.
type RedisSeatLocker struct {
	Client        *redis.Client
	Prefix        string
	TTL           time.Duration
	RetryInterval time.Duration
}

func (l *RedisSeatLocker) key(seatID string) string {
	prefix := l.Prefix
	if prefix == "" {
		prefix = "seatlock"
	}
	return fmt.Sprintf("%s:%s", prefix, seatID)
}

func (l *RedisSeatLocker) ttl() time.Duration {
	if l.TTL > 0 {
		return l.TTL
	}
	return 10 * time.Second
}

func (l *RedisSeatLocker) retryInterval() time.Duration {
	if l.RetryInterval > 0 {
		return l.RetryInterval
	}
	return 25 * time.Millisecond
}

func (l *RedisSeatLocker) Lock(ctx context.Context, seatIDs []string) (func(), error) {
	keys := make([]string, 0, len(seatIDs))
	for _, id := range lockKeys(seatIDs) {
		keys = append(keys, l.key(id))
	}
	token := uuid.NewString()

	for {
		ok, err := l.tryLock(ctx, keys, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() { l.release(keys, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryInterval()):
		}
	}
}

func (l *RedisSeatLocker) tryLock(ctx context.Context, keys []string, token string) (bool, error) {
	pipe := l.Client.TxPipeline()
	cmds := make([]*redis.BoolCmd, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, pipe.SetNX(ctx, k, token, l.ttl()))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	for _, cmd := range cmds {
		if !cmd.Val() {
			// another request holds one of the seats; give back what we took
			l.release(keys, token)
			return false, nil
		}
	}
	return true, nil
}

// release deletes only keys still carrying token, using a fresh context so a
// cancelled request still frees its seats.
func (l *RedisSeatLocker) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, k := range keys {
		if err := releaseSeatScript.Run(ctx, l.Client, []string{k}, token).Err(); err != nil && err != redis.Nil {
			utils.GetLogger().Warn("seat lock release failed", zap.String("key", k), zap.Error(err))
		}
	}
}
