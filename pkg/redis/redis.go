package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/glowmate/api/pkg/config"
	goredis "github.com/redis/go-redis/v9"
)

var (
	rdb         *goredis.Client
	client_once sync.Once
)

func InitRedis(rc config.Redis) {
	client_once.Do(func() {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:     rc.Addr,
			Password: rc.Pass,
			DB:       rc.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[error] redis ping failed: %v", err)
			panic(err)
		}

		log.Printf("[info] redis connection established successfully")
	})
}

func Client() *goredis.Client {
	if rdb == nil {
		log.Panic("Redis is not initialized. Call InitRedis first.")
	}
	return rdb
}
