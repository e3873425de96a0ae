package cache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"tirtha/internal/cache"
	"tirtha/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideRedis, provideDestinationCache),
	fx.Invoke(registerClose))

func provideRedis() *redis.Client {
	return infra.InitRedis()
}

func provideDestinationCache(client *redis.Client) cache.DestinationCache {
	return cache.NewDestinationCache(client)
}

func registerClose(lc fx.Lifecycle, client *redis.Client) {
	lc.Append(fx.StopHook(func() {
		infra.CloseRedis(client)
	}))
}
