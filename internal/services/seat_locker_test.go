package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestLockKeysSortedAndUnique(t *testing.T) {
	got := lockKeys([]string{"s003", "S001", "S003", " "})
	want := []string{"S001", "S003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lockKeys = %v, want %v", got, want)
	}
}

func TestLocalSeatLockerBlocksOverlappingSets(t *testing.T) {
	l := NewLocalSeatLocker()
	release, err := l.Lock(context.Background(), []string{"S001", "S002"})
	if err != nil {
		t.Fatalf("Lock error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, err := l.Lock(ctx, []string{"S002", "S003"}); err == nil {
		t.Fatalf("overlapping set should wait until ctx deadline")
	}

	// disjoint set is not blocked
	r2, err := l.Lock(context.Background(), []string{"S003"})
	if err != nil {
		t.Fatalf("disjoint Lock error: %v", err)
	}
	r2()

	release()
	release() // second call is a no-op
	r3, err := l.Lock(context.Background(), []string{"S002"})
	if err != nil {
		t.Fatalf("Lock after release error: %v", err)
	}
	r3()
}

func TestRedisSeatLockerKeys(t *testing.T) {
	l := &RedisSeatLocker{Prefix: "seatlock:BUS001"}
	if got := l.key("S001"); got != "seatlock:BUS001:S001" {
		t.Fatalf("key = %q", got)
	}
	if (&RedisSeatLocker{}).key("S001") != "seatlock:S001" {
		t.Fatalf("default prefix not applied")
	}
}

func TestRedisSeatLockerReportsUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := &RedisSeatLocker{Client: client}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := l.Lock(ctx, []string{"S001"}); err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
}
