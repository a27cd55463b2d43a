package database

import (
	"cinema_scheduler/config"
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis is optional: when REDIS_HOST is unset the listing cache
// is simply skipped.
func ConnectRedis() {
	host := config.Config("REDIS_HOST")
	if host == "" {
		log.Println("redis disabled: REDIS_HOST is not set")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + config.Config("REDIS_PORT"),
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("redis unavailable, continuing without cache:", err)
		return
	}

	Redis = client
}
