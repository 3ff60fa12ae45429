package services

import (
	"context"
	"sort"
	"sync"

	"sleeperbus/internal/utils"
)

// SeatLocker serializes check-then-commit on a set of seats. The returned
// release func must be called exactly once.
type SeatLocker interface {
	Lock(ctx context.Context, seatIDs []string) (release func(), err error)
}

// LocalSeatLocker keeps one single-slot channel per seat so waiting can be
// abandoned when ctx ends. Seats are taken in sorted order, which keeps two
// overlapping seat sets from deadlocking each other.
type LocalSeatLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalSeatLocker() *LocalSeatLocker {
	return &LocalSeatLocker{slots: map[string]chan struct{}{}}
}

func (l *LocalSeatLocker) slot(seatID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[seatID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[seatID] = ch
	}
	return ch
}

func (l *LocalSeatLocker) Lock(ctx context.Context, seatIDs []string) (func(), error) {
	keys := lockKeys(seatIDs)
	held := make([]chan struct{}, 0, len(keys))
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-held[i]
		}
	}
	for _, k := range keys {
		ch := l.slot(k)
		select {
		case ch <- struct{}{}:
			held = append(held, ch)
		case <-ctx.Done():
			unlock()
			return nil, ctx.Err()
		}
	}
	var once sync.Once
	return func() { once.Do(unlock) }, nil
}

// lockKeys normalizes, dedups and sorts seat ids.
func lockKeys(seatIDs []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(seatIDs))
	for _, id := range utils.NormalizeIDs(seatIDs) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
