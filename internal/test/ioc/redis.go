package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	cache  ecache.Cache
)

func InitRedis() *redis.Client {
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
	}
	return client
}

func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(InitRedis()),
		Namespace: "quizbank:",
	}
	return cache
}
