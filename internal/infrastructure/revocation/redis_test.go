package revocation

import (
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestRedisStore_CloseLeavesSharedClientOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	s := NewRedisStore(client, "test")
	if err := s.Close(); err != nil {
		t.Fatalf("store close: %v", err)
	}

	// client 由建立者持有，之後仍要能正常關閉一次
	if err := client.Close(); err != nil {
		t.Fatalf("shared client should close cleanly after store close: %v", err)
	}
}
