package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// Pipeline runs take a single-writer lock so concurrent runs never race on
// the store. The TTL bounds how long a crashed run can hold the lock.
const runLockKey = "newsroom:lock:pipeline"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// AcquireRunLock reports whether this process now holds the pipeline lock.
func AcquireRunLock(ttl time.Duration) (bool, error) {
	return Redis.SetNX(Ctx, runLockKey, "locked", ttl).Result()
}

func ReleaseRunLock() error {
	return Redis.Del(Ctx, runLockKey).Err()
}
